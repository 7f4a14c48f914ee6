package http

// appendCRLF appends \r\n to buf.
func appendCRLF(buf []byte) []byte {
	return append(buf, '\r', '\n')
}

// appendStartLine appends "A SP B SP C" to buf with no terminator.
// Request lines and status lines share this shape.
func appendStartLine(buf []byte, a, b, c string) []byte {
	buf = append(buf, a...)
	buf = append(buf, ' ')
	buf = append(buf, b...)
	buf = append(buf, ' ')
	return append(buf, c...)
}

// appendFieldLines appends "\r\n" + line for every line.
func appendFieldLines(buf []byte, fields Fields) []byte {
	for _, line := range fields {
		buf = appendCRLF(buf)
		buf = append(buf, line...)
	}
	return buf
}

func fieldsSize(fields Fields) int {
	n := 0
	for _, line := range fields {
		n += 2 + len(line)
	}
	return n
}

func (r *Request) size() int {
	return len(r.method) + len(r.uri) + len(r.version) + 4 + fieldsSize(r.fields)
}

func (r *Response) size() int {
	return len(r.version) + len(r.status) + len(r.message) + 6 + fieldsSize(r.fields) + len(r.body)
}
