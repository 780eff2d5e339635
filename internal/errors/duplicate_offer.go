package errors

var ErrDuplicateOffer = Conflict("you have already made an offer for this task")
