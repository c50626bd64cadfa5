package assistant

// Request carries one user message plus the conversational context the
// responder may reference.
type Request struct {
	WorkspaceTitle string
	RoomTitle      string
	SenderName     string
	Message        string
}

// Response is the generated reply.
type Response struct {
	Content string
}
