package library

type ContactReq struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type TemplateReq struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type DraftReq struct {
	Message string `json:"message"`
}
