package seq

// User is the subset of a Seq user document read by the operator.
type User struct {
	ID       string `json:"Id"`
	Username string `json:"Username,omitempty"`
}

// Property is a name/value pair applied to ingested events.
type Property struct {
	Name  string `json:"Name"`
	Value string `json:"Value"`
}

// InputSettings controls how events ingested with an API key are processed.
type InputSettings struct {
	AppliedProperties   []Property `json:"AppliedProperties"`
	Filter              string     `json:"Filter,omitempty"`
	MinimumLevel        string     `json:"MinimumLevel,omitempty"`
	UseServerTimestamps bool       `json:"UseServerTimestamps"`

	Document Document `json:"-"`
}

// APIKey is a Seq API key document.
type APIKey struct {
	ID                  string        `json:"Id,omitempty"`
	Title               string        `json:"Title"`
	OwnerID             string        `json:"OwnerId,omitempty"`
	Token               string        `json:"Token,omitempty"`
	TokenPrefix         string        `json:"TokenPrefix,omitempty"`
	AssignedPermissions []string      `json:"AssignedPermissions"`
	InputSettings       InputSettings `json:"InputSettings"`

	Document Document `json:"-"`
}

// AlertColumn is a measured column of an alert query.
type AlertColumn struct {
	Label string `json:"Label,omitempty"`
	Value string `json:"Value"`
}

// GroupingColumn is a grouping expression of an alert query.
type GroupingColumn struct {
	Value string `json:"Value"`
}

// NotificationChannel routes alert notifications to an app instance.
type NotificationChannel struct {
	NotificationAppInstanceID string `json:"NotificationAppInstanceId"`
}

// Alert is a Seq alert document.
type Alert struct {
	ID                   string                `json:"Id,omitempty"`
	Title                string                `json:"Title"`
	Description          string                `json:"Description,omitempty"`
	OwnerID              string                `json:"OwnerId,omitempty"`
	Where                string                `json:"Where,omitempty"`
	Select               []AlertColumn         `json:"Select"`
	GroupBy              []GroupingColumn      `json:"GroupBy"`
	TimeGrouping         string                `json:"TimeGrouping,omitempty"`
	Having               string                `json:"Having,omitempty"`
	NotificationLevel    string                `json:"NotificationLevel,omitempty"`
	SuppressionTime      string                `json:"SuppressionTime,omitempty"`
	IsDisabled           bool                  `json:"IsDisabled"`
	NotificationChannels []NotificationChannel `json:"NotificationChannels"`

	Document Document `json:"-"`
}

// SignalFilter is one filter of a signal.
type SignalFilter struct {
	Description string `json:"Description,omitempty"`
	Filter      string `json:"Filter"`
}

// SignalColumn is a column shown when a signal is selected.
type SignalColumn struct {
	Expression string `json:"Expression"`
}

// Signal is a Seq signal document.
type Signal struct {
	ID                string         `json:"Id,omitempty"`
	Title             string         `json:"Title"`
	Description       string         `json:"Description,omitempty"`
	OwnerID           string         `json:"OwnerId,omitempty"`
	Filters           []SignalFilter `json:"Filters"`
	Columns           []SignalColumn `json:"Columns"`
	Grouping          string         `json:"Grouping,omitempty"`
	ExplicitGroupName string         `json:"ExplicitGroupName,omitempty"`
	IsProtected       bool           `json:"IsProtected"`

	Document Document `json:"-"`
}

// SignalExpression selects the events a retention policy removes.
type SignalExpression struct {
	Kind     string `json:"Kind"`
	SignalID string `json:"SignalId,omitempty"`
}

// SignalExpressionKindSignal selects the events of a single signal.
const SignalExpressionKindSignal = "Signal"

// RetentionPolicy is a Seq retention policy document.
// RetentionTime uses the .NET TimeSpan format; see FormatTimeSpan.
type RetentionPolicy struct {
	ID                      string            `json:"Id,omitempty"`
	RetentionTime           string            `json:"RetentionTime"`
	RemovedSignalExpression *SignalExpression `json:"RemovedSignalExpression"`

	Document Document `json:"-"`
}

// SignalID returns the signal the policy applies to, or "" for all events.
func (p *RetentionPolicy) SignalID() string {
	if p.RemovedSignalExpression == nil {
		return ""
	}
	return p.RemovedSignalExpression.SignalID
}

func (s InputSettings) MarshalJSON() ([]byte, error) {
	type plain InputSettings
	p := plain(s)
	return encodeDocument(&p, s.Document)
}

func (s *InputSettings) UnmarshalJSON(data []byte) error {
	type plain InputSettings
	return decodeDocument(data, (*plain)(s), &s.Document)
}

func (k APIKey) MarshalJSON() ([]byte, error) {
	type plain APIKey
	p := plain(k)
	return encodeDocument(&p, k.Document)
}

func (k *APIKey) UnmarshalJSON(data []byte) error {
	type plain APIKey
	return decodeDocument(data, (*plain)(k), &k.Document)
}

func (a Alert) MarshalJSON() ([]byte, error) {
	type plain Alert
	p := plain(a)
	return encodeDocument(&p, a.Document)
}

func (a *Alert) UnmarshalJSON(data []byte) error {
	type plain Alert
	return decodeDocument(data, (*plain)(a), &a.Document)
}

func (s Signal) MarshalJSON() ([]byte, error) {
	type plain Signal
	p := plain(s)
	return encodeDocument(&p, s.Document)
}

func (s *Signal) UnmarshalJSON(data []byte) error {
	type plain Signal
	return decodeDocument(data, (*plain)(s), &s.Document)
}

func (p RetentionPolicy) MarshalJSON() ([]byte, error) {
	type plain RetentionPolicy
	v := plain(p)
	return encodeDocument(&v, p.Document)
}

func (p *RetentionPolicy) UnmarshalJSON(data []byte) error {
	type plain RetentionPolicy
	return decodeDocument(data, (*plain)(p), &p.Document)
}
