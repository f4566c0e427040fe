package whatsapp

// --- Incoming webhook payload ---
// Reference: https://developers.facebook.com/docs/whatsapp/cloud-api/webhooks/components

// BusinessAccountObject is the only webhook object this service subscribes to.
const BusinessAccountObject = "whatsapp_business_account"

type WebhookPayload struct {
	Object string  `json:"object"`
	Entry  []Entry `json:"entry"`
}

type Entry struct {
	ID      string   `json:"id"`
	Changes []Change `json:"changes"`
}

type Change struct {
	Value ChangeValue `json:"value"`
	Field string      `json:"field"`
}

type ChangeValue struct {
	MessagingProduct string    `json:"messaging_product"`
	Metadata         Metadata  `json:"metadata"`
	Contacts         []Contact `json:"contacts"`
	Messages         []Message `json:"messages"`
	Statuses         []Status  `json:"statuses"`
}

type Metadata struct {
	DisplayPhoneNumber string `json:"display_phone_number"`
	PhoneNumberID      string `json:"phone_number_id"`
}

type Contact struct {
	Profile Profile `json:"profile"`
	WaID    string  `json:"wa_id"`
}

type Profile struct {
	Name string `json:"name"`
}

type Message struct {
	From        string              `json:"from"`
	ID          string              `json:"id"`
	Timestamp   string              `json:"timestamp"`
	Type        string              `json:"type"`
	Text        *TextContent        `json:"text,omitempty"`
	Interactive *InteractiveContent `json:"interactive,omitempty"`
}

type TextContent struct {
	Body string `json:"body"`
}

// InteractiveContent is a user's reply to an interactive message. Only list
// replies are meaningful to the menu flow; button replies are ignored.
type InteractiveContent struct {
	Type      string        `json:"type"`
	ListReply *ListReplyMsg `json:"list_reply,omitempty"`
}

type ListReplyMsg struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Status struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	RecipientID string `json:"recipient_id"`
}

// --- Outgoing send message ---
// Reference: https://developers.facebook.com/docs/whatsapp/cloud-api/messages

type SendMessageRequest struct {
	MessagingProduct string       `json:"messaging_product"`
	RecipientType    string       `json:"recipient_type"`
	To               string       `json:"to"`
	Type             string       `json:"type"`
	Text             *SendText    `json:"text,omitempty"`
	Interactive      *Interactive `json:"interactive,omitempty"`
}

type SendText struct {
	PreviewURL bool   `json:"preview_url"`
	Body       string `json:"body"`
}

type Interactive struct {
	Type   string             `json:"type"`
	Header *InteractiveHeader `json:"header,omitempty"`
	Body   InteractiveBody    `json:"body"`
	Footer *InteractiveFooter `json:"footer,omitempty"`
	Action InteractiveAction  `json:"action"`
}

type InteractiveHeader struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type InteractiveBody struct {
	Text string `json:"text"`
}

type InteractiveFooter struct {
	Text string `json:"text"`
}

type InteractiveAction struct {
	Button   string    `json:"button,omitempty"`
	Sections []Section `json:"sections,omitempty"`
}

// Section and SectionRow support list-type interactive messages.
// Reference: https://developers.facebook.com/docs/whatsapp/cloud-api/messages/interactive-list-messages
type Section struct {
	Title string       `json:"title"`
	Rows  []SectionRow `json:"rows"`
}

type SectionRow struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// --- API error envelope ---

type apiErrorResponse struct {
	Error *APIError `json:"error"`
}

// APIError is the Graph API error object returned on 4xx/5xx responses.
// Status carries the HTTP status code of the response; a 4xx means the API
// rejected the message, a 5xx is a provider fault.
type APIError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    int    `json:"code"`
	Status  int    `json:"-"`
}

func (e *APIError) Error() string {
	return e.Message
}

// Graph API error code for recipients missing from the test allow list.
const codeRecipientNotAllowed = 131030
