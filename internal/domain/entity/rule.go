package entity

// ResourceType is a resource kind understood by the declarative block engine.
type ResourceType string

const (
	ResourceMainFrame      ResourceType = "main_frame"
	ResourceSubFrame       ResourceType = "sub_frame"
	ResourceStylesheet     ResourceType = "stylesheet"
	ResourceScript         ResourceType = "script"
	ResourceImage          ResourceType = "image"
	ResourceFont           ResourceType = "font"
	ResourceObject         ResourceType = "object"
	ResourceXMLHTTPRequest ResourceType = "xmlhttprequest"
	ResourcePing           ResourceType = "ping"
	ResourceMedia          ResourceType = "media"
	ResourceWebSocket      ResourceType = "websocket"
	ResourceWebTransport   ResourceType = "webtransport"
	ResourceOther          ResourceType = "other"
)

// AllResourceTypes returns every supported resource type in table order.
func AllResourceTypes() []ResourceType {
	return []ResourceType{
		ResourceMainFrame,
		ResourceSubFrame,
		ResourceStylesheet,
		ResourceScript,
		ResourceImage,
		ResourceFont,
		ResourceObject,
		ResourceXMLHTTPRequest,
		ResourcePing,
		ResourceMedia,
		ResourceWebSocket,
		ResourceWebTransport,
		ResourceOther,
	}
}

// RuleActionType is what the engine does on match.
type RuleActionType string

// RuleActionBlock is the only action the compiler emits.
const RuleActionBlock RuleActionType = "block"

// RulePriority is the constant priority given to every compiled rule.
const RulePriority = 1

// RuleRecord is one entry of the compiled static rule table.
type RuleRecord struct {
	ID        int           `json:"id" jsonschema:"minimum=1"`
	Priority  int           `json:"priority" jsonschema:"minimum=1"`
	Action    RuleAction    `json:"action"`
	Condition RuleCondition `json:"condition"`
}

// RuleAction describes the effect of a rule.
type RuleAction struct {
	Type RuleActionType `json:"type" jsonschema:"enum=block"`
}

// RuleCondition describes what a rule matches.
type RuleCondition struct {
	URLFilter     string         `json:"urlFilter"`
	ResourceTypes []ResourceType `json:"resourceTypes" jsonschema:"enum=main_frame,enum=sub_frame,enum=stylesheet,enum=script,enum=image,enum=font,enum=object,enum=xmlhttprequest,enum=ping,enum=media,enum=websocket,enum=webtransport,enum=other"`
}

// MatchPattern wraps a domain in wildcards.
func MatchPattern(domain string) string {
	return "*" + domain + "*"
}
