package errors

var ErrOfferNotFound = NotFound("offer not found")
