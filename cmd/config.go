package cmd

import "medlogistics/internal/core/domain/model/workflow"

type Config struct {
	HTTPPort                string
	DBHost                  string
	DBPort                  string
	DBUser                  string
	DBPassword              string
	DBName                  string
	DBSslMode               string
	KafkaHost               string
	KafkaStatusChangedTopic string

	AutoAdvance        bool
	RequireApproval    bool
	NotifyOnTransition bool
	LogAllChanges      bool
}

// WorkflowConfig maps the process configuration onto the workflow policy.
func (c Config) WorkflowConfig() workflow.Config {
	return workflow.Config{
		AutoAdvance:        c.AutoAdvance,
		RequireApproval:    c.RequireApproval,
		NotifyOnTransition: c.NotifyOnTransition,
		LogAllChanges:      c.LogAllChanges,
	}
}
