package arg

// HandleDraft fills a title and body from positional arguments. Values
// already given through flags take precedence.
func HandleDraft(args []string, title, body string) (string, string) {
	if title == "" && len(args) > 0 {
		title = args[0]
	}
	if body == "" && len(args) > 1 {
		body = args[1]
	}
	return title, body
}
