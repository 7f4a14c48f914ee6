package http

// appendRequest serializes a Request to wire format.
// Without field lines: "METHOD URI VERSION\r\n".
// With field lines: "METHOD URI VERSION" then "\r\n" + line for each, with
// no terminator after the last.
func appendRequest(buf []byte, req *Request) []byte {
	buf = appendStartLine(buf, req.method, req.uri, req.version)
	if len(req.fields) == 0 {
		return appendCRLF(buf)
	}
	return appendFieldLines(buf, req.fields)
}

// appendResponse serializes a Response to wire format:
// "VERSION STATUS MESSAGE", "\r\n" + line for each field line, "\r\n\r\n",
// then the body verbatim.
func appendResponse(buf []byte, resp *Response) []byte {
	buf = appendStartLine(buf, resp.version, resp.status, resp.message)
	buf = appendFieldLines(buf, resp.fields)
	buf = appendCRLF(appendCRLF(buf))
	return append(buf, resp.body...)
}
