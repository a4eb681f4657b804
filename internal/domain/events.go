package domain

const (
	ObjectCreatedPut = "ObjectCreated:Put"

	// EventTimeFormat is the layout S3 uses for eventTime.
	EventTimeFormat = "2006-01-02T15:04:05.000Z"

	SuccessStatusCode = 200
	SuccessBody       = "Success"
)

type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

func SuccessResponse() Response {
	return Response{StatusCode: SuccessStatusCode, Body: SuccessBody}
}
