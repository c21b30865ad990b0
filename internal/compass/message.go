package compass

type Sender string

const (
	SenderUser   Sender = "user"
	SenderParent Sender = "parent"
)

type Message struct {
	Sender Sender `json:"sender"`
	Text   string `json:"text"`
}
