package http

import (
	"github.com/cockroachdb/errors"
	"github.com/shapestone/shape-httpmsg/internal/tokenizer"
)

// Unmarshal parses the wire-format data and stores the result in v.
//
// v must be a *Request, a *Response or an Unmarshaler. The start line must
// agree with the target: data starting with a version token is a response.
// On failure v is left unchanged.
func Unmarshal(data []byte, v interface{}) error {
	if v == nil {
		return errors.New("http: Unmarshal(nil)")
	}

	if u, ok := v.(Unmarshaler); ok {
		return u.UnmarshalHTTP(data)
	}

	isResp := tokenizer.Classify(string(data)) == tokenizer.KindResponse

	switch target := v.(type) {
	case *Request:
		if isResp {
			return errors.New("http: data appears to be a response but target is *Request")
		}
		req, err := ParseRequest(string(data))
		if err != nil {
			return err
		}
		*target = req
		return nil

	case *Response:
		if !isResp {
			return errors.New("http: data appears to be a request but target is *Response")
		}
		resp, err := ParseResponse(string(data))
		if err != nil {
			return err
		}
		*target = resp
		return nil

	default:
		return errors.Newf("http: Unmarshal unsupported type %T (expected *Request or *Response)", v)
	}
}
