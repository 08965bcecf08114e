package event

import (
	"fmt"
	"reflect"
	"strings"
)

var (
	nameToType    = make(map[string]EventType)
	typeToName    = make(map[EventType]string)
	typeToPayload = make(map[EventType]reflect.Type)
)

func init() {
	registerType("tick", EventTick, nil)
	registerType("projectile_fired", EventProjectileFired, &ProjectileFiredPayload{})
	registerType("formation_reversed", EventFormationReversed, &FormationReversedPayload{})
	registerType("collision", EventCollision, &CollisionPayload{})
	registerType("session_over", EventSessionOver, &SessionOverPayload{})
	registerType("projectile_culled", EventProjectileCulled, &ProjectileCulledPayload{})
}

// registerType maps a name to an EventType and its payload struct type
func registerType(name string, et EventType, payloadInstance any) {
	nameToType[name] = et
	typeToName[et] = name
	if payloadInstance != nil {
		t := reflect.TypeOf(payloadInstance)
		if t.Kind() == reflect.Ptr {
			t = t.Elem()
		}
		typeToPayload[et] = t
	}
}

// ParseType returns the EventType for a registered name, case-insensitive
func ParseType(name string) (EventType, error) {
	et, ok := nameToType[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown event type %q", name)
	}
	return et, nil
}

// ParseTypes parses a comma separated list of event names
// Empty input yields nil, meaning no filter
func ParseTypes(list string) ([]EventType, error) {
	if strings.TrimSpace(list) == "" {
		return nil, nil
	}
	parts := strings.Split(list, ",")
	types := make([]EventType, 0, len(parts))
	for _, p := range parts {
		et, err := ParseType(p)
		if err != nil {
			return nil, err
		}
		types = append(types, et)
	}
	return types, nil
}

// NewPayloadStruct returns a pointer to a zero payload for the event type, or nil
func NewPayloadStruct(et EventType) any {
	t, ok := typeToPayload[et]
	if !ok {
		return nil
	}
	return reflect.New(t).Interface()
}

// Types returns every registered event type except the tick placeholder
func Types() []EventType {
	return []EventType{
		EventProjectileFired,
		EventFormationReversed,
		EventCollision,
		EventSessionOver,
		EventProjectileCulled,
	}
}
