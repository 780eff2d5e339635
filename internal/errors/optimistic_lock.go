package errors

var ErrOptimisticLock = Conflict("the record was modified concurrently, reload and retry")
