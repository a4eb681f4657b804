package domain

import "strings"

// FileEntry is the item written to the file data table. The attribute
// names match the table provisioned for the function.
type FileEntry struct {
	ID          string `json:"id" dynamodbav:"FileID"`
	Timestamp   string `json:"timestamp" dynamodbav:"Timestamp"`
	Container   string `json:"container" dynamodbav:"Bucket"`
	DerivedName string `json:"derivedName" dynamodbav:"FileName"`
}

// DerivedName returns the portion of key after the last '/', or key itself
// when it has no separator.
func DerivedName(key string) string {
	return key[strings.LastIndex(key, "/")+1:]
}

// Entry maps the record at position index of its batch to a FileEntry.
func (r LambdaRecord) Entry(index int) (FileEntry, error) {
	if r.S3.Bucket.Name == nil {
		return FileEntry{}, MalformedRecordError{Index: index, Field: "s3.bucket.name"}
	}

	if r.S3.Object.Key == nil {
		return FileEntry{}, MalformedRecordError{Index: index, Field: "s3.object.key"}
	}

	if r.EventTime == nil {
		return FileEntry{}, MalformedRecordError{Index: index, Field: "eventTime"}
	}

	key := *r.S3.Object.Key

	return FileEntry{
		ID:          key,
		Timestamp:   *r.EventTime,
		Container:   *r.S3.Bucket.Name,
		DerivedName: DerivedName(key),
	}, nil
}
