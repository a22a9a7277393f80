package consumer

import (
	"localization-srv/internal/analysis"
	kafkaDelivery "localization-srv/internal/analysis/delivery/kafka"
	"localization-srv/internal/model"
)

func toProcessInput(m kafkaDelivery.AnalysisRequestedMessage) analysis.ProcessInput {
	return analysis.ProcessInput{AnalysisID: m.AnalysisID}
}

func toScope(m kafkaDelivery.AnalysisRequestedMessage) model.Scope {
	sc := model.Scope{UserID: m.UserID, WorkspaceID: m.WorkspaceID}
	if sc.UserID == "" {
		sc.UserID = model.AnonymousUserID
	}
	return sc
}
