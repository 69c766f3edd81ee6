package longhashmap

// InvalidArgument - Custom error to inform that an argument given to a constructor is not acceptable
type InvalidArgument struct {
	msg string
}

// Error - Used to notify that an argument is invalid
func (E InvalidArgument) Error() string {
	if E.msg == "" {
		return "invalid argument"
	}
	return E.msg
}

// Is - Makes errors.Is(err, InvalidArgument{}) match regardless of message
func (E InvalidArgument) Is(target error) bool {
	_, ok := target.(InvalidArgument)
	return ok
}
