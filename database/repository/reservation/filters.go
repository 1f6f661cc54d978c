package reservationRepo

import (
	"travelhub/models"

	"go.mongodb.org/mongo-driver/bson"
)

// fieldSet names the owner, customer and creation fields of one collection.
type fieldSet struct {
	owner    string
	customer string
	created  string
	// legacyStatus marks collections whose older documents carry no status.
	legacyStatus bool
	// ownerByEmail marks collections that may store the owner's email.
	ownerByEmail bool
}

var (
	serviceFields    = fieldSet{owner: "providerId", customer: "customerId", created: "createdAt"}
	tourFields       = fieldSet{owner: "tourOwnerId", customer: "customerId", created: "createdAt", ownerByEmail: true}
	vehicleFields    = fieldSet{owner: "vehicleOwnerId", customer: "userId", created: "date", legacyStatus: true}
	restaurantFields = fieldSet{owner: "restaurantOwnerId", customer: "user", created: "createdAt"}
)

// buildFilter translates q into a mongo filter for the collection described by f.
func buildFilter(f fieldSet, q Query) bson.M {
	filter := bson.M{}

	if q.OwnerID != "" {
		if f.ownerByEmail && q.OwnerEmail != "" {
			filter[f.owner] = bson.M{"$in": []string{q.OwnerID, q.OwnerEmail}}
		} else {
			filter[f.owner] = q.OwnerID
		}
	}
	if q.CustomerID != "" {
		filter[f.customer] = q.CustomerID
	}
	if q.Status != "" {
		if f.legacyStatus && q.Status == models.StatusPending {
			filter["$or"] = bson.A{
				bson.M{"status": models.StatusPending},
				bson.M{"status": ""},
				bson.M{"status": bson.M{"$exists": false}},
			}
		} else {
			filter["status"] = q.Status
		}
	}
	return filter
}

func newestFirst(f fieldSet) bson.D {
	return bson.D{{Key: f.created, Value: -1}, {Key: "id", Value: 1}}
}
