package differ

import (
	"fmt"
	"strings"

	"github.com/erraggy/specdiff/internal/pathutil"
	"github.com/erraggy/specdiff/parser"
)

// Action is what happened to an entity between the two documents.
type Action string

const (
	// ActionAdd indicates the entity exists only in the destination
	ActionAdd Action = "add"
	// ActionRemove indicates the entity exists only in the source
	ActionRemove Action = "remove"
)

// Taxonomy entities. Top-level info fields use "info.<field>".
const (
	EntityPath               = "path"
	EntityMethod             = "method"
	EntityRequiredParameter  = "request.parameter.required"
	EntityOptionalParameter  = "request.parameter.optional"
	EntityParameterScope     = "request.parameter.scope"
	EntityRequestBodyScope   = "request.body.scope"
	EntityResponseStatusCode = "response.status-code"
	EntityResponseHeader     = "response.header"
	EntityResponseBodyScope  = "response.body.scope"
	EntityUnclassified       = "unclassified"
)

// Difference sources.
const (
	// SourceSpecDiff marks structural findings of the differ itself
	SourceSpecDiff = "spec-diff"
	// SourceJSONSchemaDiff marks findings reported by the schema oracle
	SourceJSONSchemaDiff = "json-schema-diff"
)

// extensionMarker identifies vendor extension property names.
const extensionMarker = "x-"

// EntityDetails locates one side of a difference.
type EntityDetails struct {
	// Location is the dotted path in the document, e.g. "paths./pets.get"
	Location string `json:"location" yaml:"location"`
	// Value is the entity as found at Location
	Value any `json:"value" yaml:"value"`
}

// Difference is a single finding between a source and a destination document.
type Difference struct {
	Action Action `json:"action" yaml:"action"`
	Entity string `json:"entity" yaml:"entity"`
	// Code is "<entity>.<action>", the key severity policies match on
	Code string `json:"code" yaml:"code"`
	// Source is SourceSpecDiff or SourceJSONSchemaDiff
	Source string `json:"source" yaml:"source"`
	// SourceSpecEntityDetails is nil when the entity is absent from the source
	SourceSpecEntityDetails *EntityDetails `json:"sourceSpecEntityDetails,omitempty" yaml:"sourceSpecEntityDetails,omitempty"`
	// DestinationSpecEntityDetails is nil when the entity is absent from the destination
	DestinationSpecEntityDetails *EntityDetails `json:"destinationSpecEntityDetails,omitempty" yaml:"destinationSpecEntityDetails,omitempty"`
	// Details holds the schema fragment for scope differences
	Details any `json:"details,omitempty" yaml:"details,omitempty"`
}

// Location returns where the difference applies: the destination location for
// additions and the source location for removals, falling back to whichever
// side is present.
func (d Difference) Location() string {
	primary, secondary := d.SourceSpecEntityDetails, d.DestinationSpecEntityDetails
	if d.Action == ActionAdd {
		primary, secondary = secondary, primary
	}
	if primary != nil {
		return primary.Location
	}
	if secondary != nil {
		return secondary.Location
	}
	return ""
}

// String returns a formatted string representation of the difference
func (d Difference) String() string {
	return fmt.Sprintf("%s %s", d.Code, d.Location())
}

func isExtensionProperty(propertyName string) bool {
	for segment := range strings.SplitSeq(propertyName, ".") {
		if strings.HasPrefix(segment, extensionMarker) {
			return true
		}
	}
	return false
}

// entityDetails describes a property, or returns nil for an absent side.
func entityDetails[T any](p *parser.Property[T]) *EntityDetails {
	if p == nil {
		return nil
	}
	return &EntityDetails{
		Location: pathutil.JoinPath(p.OriginalPath),
		Value:    p.Value,
	}
}

// newDifference is the only constructor of differences. Property names
// with a dotted segment that is a vendor extension are tagged unclassified.
func newDifference(source, destination *EntityDetails, propertyName string, action Action) Difference {
	entity := propertyName
	if isExtensionProperty(propertyName) {
		entity = EntityUnclassified
	}
	return Difference{
		Action:                       action,
		Entity:                       entity,
		Code:                         entity + "." + string(action),
		Source:                       SourceSpecDiff,
		SourceSpecEntityDetails:      source,
		DestinationSpecEntityDetails: destination,
	}
}
