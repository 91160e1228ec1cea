package responses

type ResponseDTO struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// Navigation tells the client to move to another page. Replace mirrors a
// history replacement: the current page must not stay reachable via "back".
type Navigation struct {
	RedirectTo string `json:"redirect_to"`
	Replace    bool   `json:"replace"`
}

// BackendMessage is the generic upstream envelope for errors and acknowledgements.
type BackendMessage struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// PageView describes a public page the client should render.
type PageView struct {
	Page string `json:"page"`
}
