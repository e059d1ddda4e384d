package constvars

const (
	MongoCollectionUsers              = "users"
	MongoCollectionGuides             = "guides"
	MongoCollectionTrails             = "trails"
	MongoCollectionAvailabilityRanges = "availability_ranges"
)
