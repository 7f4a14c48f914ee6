package http

import (
	"sync"

	"github.com/cockroachdb/errors"
)

// bufPool pools []byte slices for the encoder fast path.
var bufPool = sync.Pool{
	New: func() interface{} {
		b := make([]byte, 0, 2048)
		return &b
	},
}

// Marshal returns the wire-format encoding of v.
//
// v must be a Request, *Request, Response, *Response or a Marshaler.
// Rendering never validates: an incomplete message renders with empty parts.
//
// Marshal uses a sync.Pool buffer internally.
func Marshal(v interface{}) ([]byte, error) {
	if v == nil {
		return nil, errors.New("http: Marshal(nil)")
	}

	if m, ok := v.(Marshaler); ok {
		return m.MarshalHTTP()
	}

	bp := bufPool.Get().(*[]byte)
	buf := (*bp)[:0]

	switch msg := v.(type) {
	case *Request:
		buf = appendRequest(buf, msg)
	case Request:
		buf = appendRequest(buf, &msg)
	case *Response:
		buf = appendResponse(buf, msg)
	case Response:
		buf = appendResponse(buf, &msg)
	default:
		*bp = buf
		bufPool.Put(bp)
		return nil, errors.Newf("http: Marshal unsupported type %T (expected Request or Response)", v)
	}

	result := make([]byte, len(buf))
	copy(result, buf)
	*bp = buf
	bufPool.Put(bp)
	return result, nil
}
