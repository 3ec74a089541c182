package errors

import "fmt"

// ErrorType defines the category of the error
type ErrorType string

const (
	TypeConfiguration ErrorType = "CONFIGURATION"
	TypeAI            ErrorType = "AI"
	TypeGit           ErrorType = "GIT"
	TypeInternal      ErrorType = "INTERNAL"
)

// AppError represents a domain-level error with a type and an underlying error
type AppError struct {
	Type       ErrorType
	Message    string
	Context    map[string]interface{}
	Err        error
	Suggestion string
}

func (e *AppError) Error() string {
	var msg string
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s (%v)", e.Type, e.Message, e.Err)
	} else {
		msg = fmt.Sprintf("%s: %s", e.Type, e.Message)
	}

	if e.Context != nil {
		if stderr, ok := e.Context["stderr"].(string); ok && stderr != "" {
			msg += fmt.Sprintf(" - %s", stderr)
		}
	}

	return msg
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is reports whether target is an AppError of the same type and message, so
// that errors derived with WithError/WithContext still match their sentinel.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type && e.Message == t.Message
}

// WithError creates a new AppError with an underlying error
func (e *AppError) WithError(err error) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        err,
		Suggestion: e.Suggestion,
	}
}

// WithContext creates a new AppError with additional context
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	ctx := make(map[string]interface{})
	for k, v := range e.Context {
		ctx[k] = v
	}
	ctx[key] = value
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    ctx,
		Err:        e.Err,
		Suggestion: e.Suggestion,
	}
}

func (e *AppError) WithSuggestion(suggestion string) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        e.Err,
		Suggestion: suggestion,
	}
}

// NewAppError creates a new AppError
func NewAppError(t ErrorType, msg string, err error) *AppError {
	return &AppError{
		Type:    t,
		Message: msg,
		Err:     err,
	}
}

// Git errors
var (
	ErrNoChanges = NewAppError(TypeGit, "No changes detected", nil).
			WithSuggestion("Stage your changes first with: git add <files>")

	ErrGetBranch = NewAppError(TypeGit, "Failed to get current branch", nil).
			WithSuggestion("Make sure you are in a git repository: git status")

	ErrNoBranch = NewAppError(TypeGit, "No branch detected", nil).
			WithSuggestion("Create a branch first: git checkout -b <branch-name>")

	ErrGetDiff = NewAppError(TypeGit, "Failed to get diff", nil).
			WithSuggestion("Check if you have staged changes: git status")

	ErrCreateCommit = NewAppError(TypeGit, "Failed to create commit", nil).
			WithSuggestion("Ensure git user is configured:\n   git config --global user.name \"Your Name\"\n   git config --global user.email \"your@email.com\"")

	ErrCreateBranch = NewAppError(TypeGit, "Failed to create branch", nil).
			WithSuggestion("Make sure the branch doesn't already exist: git branch --list")

	ErrInvalidBranchName = NewAppError(TypeGit, "Generated branch name is not valid", nil).
				WithSuggestion("Run the command again or create the branch manually")
)

// Configuration errors
var (
	ErrAPIKeyMissing = NewAppError(TypeConfiguration, "AI API key is missing", nil).
				WithSuggestion("Run: diffscribe config set-key <provider> <key>")

	ErrConfigMissing = NewAppError(TypeConfiguration, "Configuration is missing", nil).
				WithSuggestion("Check the configuration file: diffscribe config show")

	ErrProviderNotSupported = NewAppError(TypeConfiguration, "AI provider not supported", nil).
				WithSuggestion("Run: diffscribe config set-provider gemini|anthropic|openai|ollama")

	ErrReadDiffFile = NewAppError(TypeConfiguration, "Failed to read diff file", nil).
			WithSuggestion("Check the path passed to --diff-file")
)

// AI errors
var (
	ErrQuotaExceeded = NewAppError(TypeAI, "AI quota exceeded or rate limited", nil).
				WithSuggestion("Wait a few minutes and try again, or check your API quota")

	ErrAIGeneration = NewAppError(TypeAI, "AI generation failed", nil).
			WithSuggestion("Try again or check your API key configuration")

	ErrAPIKeyInvalid = NewAppError(TypeAI, "AI API key is invalid", nil).
				WithSuggestion("Check the key with: diffscribe config show")

	ErrEmptyCompletion = NewAppError(TypeAI, "AI returned an empty completion", nil).
				WithSuggestion("This is likely a temporary issue, please try again")

	ErrProviderUnreachable = NewAppError(TypeAI, "AI provider is not reachable", nil).
				WithSuggestion("Check the provider host and your network connection")
)
