package check

import "fmt"

// Fail sets the result to the given failing status with a detail message.
func (r *Result) Fail(status Status, detail string, err error) Result {
	r.Status = status
	r.Details = append(r.Details, detail)
	r.Err = err
	return *r
}

// Pass sets the result to OK with a formatted detail message.
func (r *Result) Pass(format string, args ...any) Result {
	r.Status = StatusOK
	return *r.AddDetailf(format, args...)
}

// AddDetail appends a detail line to the result.
func (r *Result) AddDetail(detail string) *Result {
	r.Details = append(r.Details, detail)
	return r
}

// AddDetailf appends a formatted detail line to the result.
func (r *Result) AddDetailf(format string, args ...any) *Result {
	return r.AddDetail(fmt.Sprintf(format, args...))
}
