package httpserver

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"localization-srv/internal/middleware"
	"localization-srv/internal/tm"
	tmHTTP "localization-srv/internal/tm/delivery/http"
	"localization-srv/internal/tm/repository"
	tmComposite "localization-srv/internal/tm/repository/composite"
	tmElasticsearch "localization-srv/internal/tm/repository/elasticsearch"
	tmQdrant "localization-srv/internal/tm/repository/qdrant"
	tmRedis "localization-srv/internal/tm/repository/redis"
	tmUsecase "localization-srv/internal/tm/usecase"
)

func (srv *HTTPServer) setupTMDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	var stores []repository.Store
	if srv.config.TM.SemanticSearch {
		stores = append(stores, tmQdrant.New(srv.qdrantClient, srv.embeddingUC, srv.config.Qdrant.Collection, srv.l))
	}
	if srv.config.TM.LexicalSearch {
		stores = append(stores, tmElasticsearch.New(srv.elasticsearchClient, srv.config.Elasticsearch.Index, srv.l))
	}
	if len(stores) == 0 {
		return errors.New("no translation memory store enabled")
	}

	srv.tmUC = tmUsecase.New(srv.l, tmComposite.New(srv.l, stores...), tmRedis.New(srv.redisClient, srv.l), srv.tmConfig())

	handler := tmHTTP.New(srv.l, srv.tmUC, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "TM domain registered with %d stores", len(stores))
	return nil
}

// tmConfig overlays the configured limits on the matching defaults.
func (srv *HTTPServer) tmConfig() tm.Config {
	cfg := tm.DefaultConfig()
	t := srv.config.TM
	if t.MatchTimeout > 0 {
		cfg.MatchTimeout = t.MatchTimeout
	}
	if t.MatchLimit > 0 {
		cfg.MatchLimit = t.MatchLimit
	}
	if t.Concurrency > 0 {
		cfg.Concurrency = t.Concurrency
	}
	if t.CacheTTL > 0 {
		cfg.CacheTTL = t.CacheTTL
	}
	return cfg
}
