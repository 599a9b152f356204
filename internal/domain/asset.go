package domain

// AssetRef identifies an uploaded object in the external asset store.
// URL is the durable public location; Key is the deletion handle used
// to remove the object later. The two fields always travel together:
// an entity either has both or has no asset at all.
type AssetRef struct {
	URL string `json:"url" bson:"url"`
	Key string `json:"key" bson:"key"`
}

// Valid reports whether the reference is internally consistent.
func (a *AssetRef) Valid() bool {
	if a == nil {
		return true
	}
	return a.URL != "" && a.Key != ""
}
