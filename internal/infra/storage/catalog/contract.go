package catalog

import "github.com/salonix/appointment-service/pkg/dbexec"

type DBExecutor = dbexec.DBExecutor
