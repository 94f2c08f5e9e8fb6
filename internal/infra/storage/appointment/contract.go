package appointment

import "github.com/m04kA/SPA-AppointmentService/pkg/dbmetrics"

// Reuse the shared executor interfaces so the repository works both on a
// plain *sql.DB and on the metric-wrapped variant, inside or outside a
// managed transaction.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor
