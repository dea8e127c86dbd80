package domain

// PublishResult is the uniform outcome a publisher produces for one platform,
// whether or not the platform itself produced anything.
type PublishResult struct {
	Platform   Platform `json:"platform"`
	Success    bool     `json:"success"`
	PostID     string   `json:"post_id,omitempty"`
	PostURL    string   `json:"post_url,omitempty"`
	Error      string   `json:"error,omitempty"`
	RetryCount int      `json:"retry_count"`
}

// ConnectionStatus is the outcome of a lightweight credential check
type ConnectionStatus struct {
	Platform Platform `json:"platform"`
	Success  bool     `json:"success"`
	Info     string   `json:"info,omitempty"`
	Error    string   `json:"error,omitempty"`
}
