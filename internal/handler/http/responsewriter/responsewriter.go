// Package responsewriter wraps http.ResponseWriter to capture the status
// code and body size for logging and metrics middleware.
package responsewriter

import "net/http"

type Recorder struct {
	http.ResponseWriter
	status  int
	bytes   int
	written bool
}

// Wrap returns a Recorder around w. The status defaults to 200 until
// WriteHeader is called.
func Wrap(w http.ResponseWriter) *Recorder {
	return &Recorder{ResponseWriter: w, status: http.StatusOK}
}

func (r *Recorder) WriteHeader(status int) {
	if r.written {
		return
	}
	r.status = status
	r.written = true
	r.ResponseWriter.WriteHeader(status)
}

func (r *Recorder) Write(b []byte) (int, error) {
	if !r.written {
		r.WriteHeader(http.StatusOK)
	}
	n, err := r.ResponseWriter.Write(b)
	r.bytes += n
	return n, err
}

// Status returns the recorded status code.
func (r *Recorder) Status() int { return r.status }

// BytesWritten returns the number of body bytes written.
func (r *Recorder) BytesWritten() int { return r.bytes }

// Unwrap exposes the underlying writer for http.ResponseController.
func (r *Recorder) Unwrap() http.ResponseWriter { return r.ResponseWriter }
