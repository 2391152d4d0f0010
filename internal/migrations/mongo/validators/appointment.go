package validators

import (
	"leadg/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
)

var hhmmPattern = `^([01][0-9]|2[0-3]):[0-5][0-9]$`

var AppointmentValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"name",
			"email",
			"phone",
			"date",
			"reference_time",
			"reference_timezone",
			"status",
			"created_at",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"name": bson.M{
				"bsonType":  "string",
				"minLength": 2,
				"maxLength": 100,
			},

			"email": bson.M{
				"bsonType":  "string",
				"maxLength": 254,
			},

			"phone": bson.M{
				"bsonType":  "string",
				"minLength": 1,
				"maxLength": 20,
			},

			"company": bson.M{
				"bsonType":  "string",
				"maxLength": 100,
			},

			"industry": bson.M{
				"bsonType":  "string",
				"maxLength": 50,
			},

			"service_interests": bson.M{
				"bsonType":  "string",
				"maxLength": 200,
			},

			"message": bson.M{
				"bsonType":  "string",
				"maxLength": 1000,
			},

			"date": bson.M{
				"bsonType": "string",
				"pattern":  `^\d{4}-\d{2}-\d{2}$`,
			},

			"reference_time": bson.M{
				"bsonType": "string",
				"pattern":  hhmmPattern,
			},

			"reference_timezone": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"viewer_time": bson.M{
				"bsonType": "string",
				"pattern":  hhmmPattern,
			},

			"viewer_fallback": bson.M{
				"bsonType": "bool",
			},

			"status": bson.M{
				"bsonType": "string",
				"enum":     model.AppointmentStatuses,
			},

			"created_at": bson.M{
				"bsonType": "date",
			},

			"updated_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}

var SlotLockValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{"_id", "date", "reference_time", "expires_at"},
		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "string",
			},
			"reference_time": bson.M{
				"bsonType": "string",
				"pattern":  hhmmPattern,
			},
			"expires_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
