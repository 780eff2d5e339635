package errors

var ErrEmailTaken = Conflict("email already exists")
