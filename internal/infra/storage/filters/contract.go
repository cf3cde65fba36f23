package filters

import "github.com/m04kA/SMC-GroomingAgenda/pkg/dbmetrics"

// DBExecutor is *sql.DB or *dbmetrics.DB
type DBExecutor = dbmetrics.DBExecutor
