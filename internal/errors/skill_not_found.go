package errors

var ErrSkillNotFound = NotFound("skill not found")
