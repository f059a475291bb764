package tagstore

// Package tagstore keeps the image identifier to tag set mapping for a
// tagging session and persists it as a JSON object of identifier to tag
// array. Persistence happens only through explicit Load and Save calls.
