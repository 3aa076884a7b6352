package protocol

// ErrorMessage is sent when a frame cannot be processed.
type ErrorMessage struct {
	Code    string // Error code, e.g. "E020"
	Message string // Human-readable error message
	Fatal   bool   // If true, the connection is closed after sending
}

// Error implements the error interface.
func (em *ErrorMessage) Error() string {
	if em.Fatal {
		return "fatal: " + em.Code + ": " + em.Message
	}
	return em.Code + ": " + em.Message
}

// EncodeErrorMessage encodes an error frame payload.
func EncodeErrorMessage(em *ErrorMessage) []byte {
	e := NewEncoder()
	e.WriteString(em.Code)
	e.WriteString(em.Message)
	e.WriteBool(em.Fatal)
	return e.Bytes()
}

// DecodeErrorMessage decodes an error frame payload.
func DecodeErrorMessage(data []byte) (*ErrorMessage, error) {
	d := NewDecoder(data)
	em := &ErrorMessage{}
	var err error

	if em.Code, err = d.ReadString(); err != nil {
		return nil, wrapDecodeErr(err)
	}
	if em.Message, err = d.ReadString(); err != nil {
		return nil, wrapDecodeErr(err)
	}
	if em.Fatal, err = d.ReadBool(); err != nil {
		return nil, wrapDecodeErr(err)
	}
	if err := d.finish(); err != nil {
		return nil, wrapDecodeErr(err)
	}
	return em, nil
}
