package mongo

import (
	"reflect"
	"strings"
	"testing"

	"leadg/internal/migrations/mongo/validators"
	"leadg/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
)

func bsonFields(v any) map[string]bool {
	fields := make(map[string]bool)
	t := reflect.TypeOf(v)
	for i := 0; i < t.NumField(); i++ {
		name := strings.Split(t.Field(i).Tag.Get("bson"), ",")[0]
		if name != "" && name != "-" {
			fields[name] = true
		}
	}
	return fields
}

func schemaOf(t *testing.T, validator bson.M) bson.M {
	t.Helper()
	schema, ok := validator["$jsonSchema"].(bson.M)
	if !ok {
		t.Fatal("validator has no $jsonSchema")
	}
	return schema
}

func TestAppointmentValidator_MatchesModel(t *testing.T) {
	schema := schemaOf(t, validators.AppointmentValidator)
	fields := bsonFields(model.Appointment{})

	for _, name := range schema["required"].([]string) {
		if !fields[name] {
			t.Errorf("required field %q is not stored by model.Appointment", name)
		}
	}
	for name := range schema["properties"].(bson.M) {
		if !fields[name] {
			t.Errorf("schema property %q is not stored by model.Appointment", name)
		}
	}

	status := schema["properties"].(bson.M)["status"].(bson.M)
	if !reflect.DeepEqual(status["enum"], model.AppointmentStatuses) {
		t.Errorf("status enum = %v, want %v", status["enum"], model.AppointmentStatuses)
	}
}

func TestSlotLockValidator_MatchesModel(t *testing.T) {
	schema := schemaOf(t, validators.SlotLockValidator)
	fields := bsonFields(model.SlotLock{})

	for _, name := range schema["required"].([]string) {
		if !fields[name] {
			t.Errorf("required field %q is not stored by model.SlotLock", name)
		}
	}
}

func TestIndexes(t *testing.T) {
	if len(Collections()) != 2 {
		t.Fatalf("collections = %v", Collections())
	}

	first := AppointmentsIndexes[0].Keys.(bson.D)
	var keys []string
	for _, e := range first {
		keys = append(keys, e.Key)
	}
	if !reflect.DeepEqual(keys, []string{"date", "reference_time", "status"}) {
		t.Errorf("availability index keys = %v", keys)
	}

	ttl := SlotLocksIndexes[0].Options
	if ttl == nil || ttl.ExpireAfterSeconds == nil || *ttl.ExpireAfterSeconds != 0 {
		t.Error("slot locks must expire at expires_at")
	}
}
