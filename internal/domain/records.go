package domain

// Required fields are pointers so that an absent field can be told apart
// from one that is present but empty.

type S3Object struct {
	Key       *string `json:"key"`
	Size      int64   `json:"size,omitempty"`
	ETag      string  `json:"eTag,omitempty"`
	VersionId string  `json:"versionId,omitempty"`
	Sequencer string  `json:"sequencer,omitempty"`
}

type S3BucketOwnerIdentity struct {
	PrincipalId string `json:"principalId"`
}

type S3Bucket struct {
	Name          *string               `json:"name"`
	OwnerIdentity S3BucketOwnerIdentity `json:"ownerIdentity"`
	Arn           string                `json:"arn"`
}

type S3Record struct {
	S3SchemaVersion string   `json:"s3SchemaVersion"`
	ConfigurationId string   `json:"configurationId"`
	Bucket          S3Bucket `json:"bucket"`
	Object          S3Object `json:"object"`
}

type LambdaResponseElements struct {
	RequestId string `json:"x-amz-request-id"`
	Id2       string `json:"x-amz-id-2"`
}

type LambdaRequestParameters struct {
	SourceIPAddress string `json:"sourceIPAddress"`
}

type LambdaUserIdentity struct {
	PrincipalId string `json:"principalId"`
}

// LambdaRecord is a single S3 event notification record. EventTime is kept
// exactly as S3 reports it.
type LambdaRecord struct {
	EventVersion      string                  `json:"eventVersion"`
	EventSource       string                  `json:"eventSource"`
	AwsRegion         string                  `json:"awsRegion"`
	EventTime         *string                 `json:"eventTime"`
	EventName         string                  `json:"eventName"`
	UserIdentity      LambdaUserIdentity      `json:"userIdentity"`
	RequestParameters LambdaRequestParameters `json:"requestParameters"`
	ResponseElements  LambdaResponseElements  `json:"responseElements"`
	S3                S3Record                `json:"s3"`
}

// Notification is the payload delivered to the function. A nil Records means
// the field was absent; an empty slice is a valid batch with nothing to do.
type Notification struct {
	Records []LambdaRecord `json:"Records"`
}
