package appointment

import "github.com/salonix/appointment-service/pkg/dbexec"

// Executor interfaces shared with pkg/dbexec so the repository works both on
// *sql.DB and inside a context-carried transaction.
type DBExecutor = dbexec.DBExecutor
type TxExecutor = dbexec.TxExecutor
