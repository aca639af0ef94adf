package pkg

// Envelope is the success body shared by every endpoint.
type Envelope struct {
	Success    bool        `json:"success"`
	Data       any         `json:"data,omitempty"`
	Message    string      `json:"message,omitempty"`
	Count      *int        `json:"count,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

type Pagination struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Pages int `json:"pages"`
}

func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

func OKWithMessage(data any, message string) Envelope {
	return Envelope{Success: true, Data: data, Message: message}
}

// Page wraps a list with count and pagination metadata.
func Page(data any, count, total, page, limit int) Envelope {
	pages := 0
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}
	return Envelope{
		Success:    true,
		Data:       data,
		Count:      &count,
		Pagination: &Pagination{Total: total, Page: page, Pages: pages},
	}
}
