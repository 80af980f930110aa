package model

// GenerateRequest represents a password generation request.
// Class fields take "must", "may" or "must_not"; tag fields take "allow" or
// "forbid". Empty fields fall back to "may" and "allow".
type GenerateRequest struct {
	Length    int    `json:"length"`
	Count     int    `json:"count"`
	Lowercase string `json:"lowercase"`
	Uppercase string `json:"uppercase"`
	Digits    string `json:"digits"`
	Symbols   string `json:"symbols"`
	Ambiguous string `json:"ambiguous"`
	Vowels    string `json:"vowels"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Passwords []string `json:"passwords"`
	Length    int      `json:"length"`
	Policy    string   `json:"policy"`
}
