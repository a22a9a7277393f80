package postgre

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"localization-srv/config"
)

func TestBuildDSN(t *testing.T) {
	dsn := buildDSN(config.PostgresConfig{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "loc"})
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=loc sslmode=disable search_path=public", dsn)

	dsn = buildDSN(config.PostgresConfig{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "loc", SSLMode: "require", Schema: "localization"})
	assert.Contains(t, dsn, "sslmode=require search_path=localization")
}
