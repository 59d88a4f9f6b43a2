package lib

// TokenSource supplies an MFA one-time code when a request names an MFA
// serial but carries no code of its own.
type TokenSource interface {
	GetToken() (string, error)
}

// PromptTokenSource reads the code interactively from the terminal.
type PromptTokenSource struct{}

func (PromptTokenSource) GetToken() (string, error) {
	return Prompt("Enter MFA token", false)
}

// resolveMfaToken returns the supplied code unchanged when present;
// otherwise it blocks on the provider's token source. The code is not
// validated here, STS rejects bad codes on its own.
func (p *Provider) resolveMfaToken(supplied string) (string, error) {
	if supplied != "" {
		return supplied, nil
	}
	source := p.MFA
	if source == nil {
		source = PromptTokenSource{}
	}
	return source.GetToken()
}
