package errors

// Codes attached to GraphQL errors under the "code" extension.
const (
	CodeBadUserInput = "BAD_USER_INPUT"
)

// NewBadUserInput creates an Error indicating the client supplied invalid
// arguments. fields maps each invalid argument to the rule it broke.
func NewBadUserInput(err error, fields map[string]string) *Error {
	return &Error{
		err:  err,
		code: CodeBadUserInput,
		extensions: map[string]interface{}{
			"fields": fields,
		},
	}
}

// Error is a GraphQL error with extensions. The GraphQL execution engine
// copies the result of Extensions into the "extensions" member of the
// response error.
type Error struct {
	err        error
	code       string
	extensions map[string]interface{}
}

func (e Error) Error() string {
	return e.err.Error()
}

func (e Error) Unwrap() error {
	return e.err
}

// Code is the machine readable kind of the error.
func (e Error) Code() string {
	return e.code
}

// Extensions implements the graph-gophers/graphql-go ResolverError
// extensions contract.
func (e Error) Extensions() map[string]interface{} {
	ext := make(map[string]interface{}, len(e.extensions)+1)
	for key, value := range e.extensions {
		ext[key] = value
	}
	ext["code"] = e.code
	return ext
}
