package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ATenderholt/rainbow-filedata/internal/domain"
	rainbowhttp "github.com/ATenderholt/rainbow-filedata/internal/http"
	"github.com/ATenderholt/rainbow-filedata/internal/service"
	"github.com/ATenderholt/rainbow-filedata/internal/settings"
	"github.com/ATenderholt/rainbow-filedata/internal/store"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStore struct{}

func (failingStore) Put(context.Context, domain.FileEntry) error {
	return errors.New("ResourceNotFoundException")
}

func payload(t *testing.T, bucket, key string) string {
	event := events.S3Event{
		Records: []events.S3EventRecord{
			{
				EventVersion: "2.1",
				EventSource:  "aws:s3",
				AWSRegion:    "us-west-2",
				EventName:    domain.ObjectCreatedPut,
				S3: events.S3Entity{
					SchemaVersion: "1.0",
					Bucket:        events.S3Bucket{Name: bucket},
					Object:        events.S3Object{Key: key, Size: 10},
				},
			},
		},
	}

	bytes, err := json.Marshal(event)
	require.NoError(t, err)

	return string(bytes)
}

func setup(entries service.EntryStore) *httptest.Server {
	cfg := settings.DefaultConfig()
	s := service.NewFileDataService(cfg, entries)
	mux := rainbowhttp.NewChiMux(rainbowhttp.NewInvokeHandler(cfg, s))

	return httptest.NewServer(mux)
}

func invoke(t *testing.T, server *httptest.Server, function, body string, headers map[string]string) *http.Response {
	url := server.URL + "/2015-03-31/functions/" + function + "/invocations"
	request, err := http.NewRequest(http.MethodPost, url, strings.NewReader(body))
	require.NoError(t, err)

	for k, v := range headers {
		request.Header.Set(k, v)
	}

	response, err := http.DefaultClient.Do(request)
	require.NoError(t, err)
	t.Cleanup(func() { response.Body.Close() })

	return response
}

func TestInvoke(t *testing.T) {
	memory := store.NewMemoryStore()
	server := setup(memory)
	defer server.Close()

	response := invoke(t, server, settings.DefaultFunctionName, payload(t, "uploads", "2024/reports/q1.pdf"), nil)
	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.Empty(t, response.Header.Get("X-Amz-Function-Error"))

	var result domain.Response
	require.NoError(t, json.NewDecoder(response.Body).Decode(&result))
	assert.Equal(t, domain.SuccessResponse(), result)

	entry, ok := memory.Get("2024/reports/q1.pdf")
	require.True(t, ok)
	assert.Equal(t, "uploads", entry.Container)
	assert.Equal(t, "q1.pdf", entry.DerivedName)
	assert.Equal(t, "0001-01-01T00:00:00Z", entry.Timestamp)
}

func TestInvokeByArn(t *testing.T) {
	memory := store.NewMemoryStore()
	server := setup(memory)
	defer server.Close()

	arn := "arn:aws:lambda:us-west-2:271828182845:function:" + settings.DefaultFunctionName
	response := invoke(t, server, arn, payload(t, "b", "k.txt"), nil)

	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.Equal(t, 1, memory.Len())
}

func TestInvokeUnknownFunction(t *testing.T) {
	memory := store.NewMemoryStore()
	server := setup(memory)
	defer server.Close()

	response := invoke(t, server, "something-else", payload(t, "b", "k.txt"), nil)

	assert.Equal(t, http.StatusNotFound, response.StatusCode)
	assert.Equal(t, 0, memory.Len())
}

func TestInvokeBadJson(t *testing.T) {
	server := setup(store.NewMemoryStore())
	defer server.Close()

	response := invoke(t, server, settings.DefaultFunctionName, "{not json", nil)

	assert.Equal(t, http.StatusBadRequest, response.StatusCode)
}

func TestInvokeMalformedRecord(t *testing.T) {
	memory := store.NewMemoryStore()
	server := setup(memory)
	defer server.Close()

	body := `{"Records": [{"eventTime": "t", "s3": {"bucket": {"name": "b"}}}]}`
	response := invoke(t, server, settings.DefaultFunctionName, body, nil)

	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.Equal(t, "Unhandled", response.Header.Get("X-Amz-Function-Error"))

	var result map[string]string
	require.NoError(t, json.NewDecoder(response.Body).Decode(&result))
	assert.Equal(t, "MalformedRecordError", result["errorType"])
	assert.Contains(t, result["errorMessage"], "s3.object.key")
	assert.Equal(t, 0, memory.Len())
}

func TestInvokeStorageFailure(t *testing.T) {
	server := setup(failingStore{})
	defer server.Close()

	response := invoke(t, server, settings.DefaultFunctionName, payload(t, "b", "k.txt"), nil)

	assert.Equal(t, "Unhandled", response.Header.Get("X-Amz-Function-Error"))

	var result map[string]string
	require.NoError(t, json.NewDecoder(response.Body).Decode(&result))
	assert.Equal(t, "StorageWriteError", result["errorType"])
}

func TestInvokeEvent(t *testing.T) {
	memory := store.NewMemoryStore()
	server := setup(memory)
	defer server.Close()

	headers := map[string]string{"X-Amz-Invocation-Type": "Event"}
	response := invoke(t, server, settings.DefaultFunctionName, payload(t, "b", "k.txt"), headers)

	assert.Equal(t, http.StatusAccepted, response.StatusCode)
	assert.Equal(t, 1, memory.Len())
}

func TestHealth(t *testing.T) {
	server := setup(store.NewMemoryStore())
	defer server.Close()

	response, err := http.Get(server.URL + "/health")
	require.NoError(t, err)
	defer response.Body.Close()

	assert.Equal(t, http.StatusOK, response.StatusCode)
}

func newLambdaClient(server *httptest.Server) *lambda.Client {
	cfg := aws.Config{
		Region: "us-west-2",
		Credentials: aws.CredentialsProviderFunc(func(context.Context) (aws.Credentials, error) {
			return aws.Credentials{AccessKeyID: "ABC", SecretAccessKey: "EFG"}, nil
		}),
		EndpointResolverWithOptions: aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
			return aws.Endpoint{URL: server.URL, HostnameImmutable: true}, nil
		}),
	}

	return lambda.NewFromConfig(cfg)
}

func TestInvokeWithLambdaClient(t *testing.T) {
	memory := store.NewMemoryStore()
	server := setup(memory)
	defer server.Close()

	client := newLambdaClient(server)

	names := []string{
		settings.DefaultFunctionName,
		"arn:aws:lambda:us-west-2:271828182845:function:" + settings.DefaultFunctionName,
	}

	for i, name := range names {
		key := "dir/file" + string(rune('0'+i)) + ".txt"
		out, err := client.Invoke(context.Background(), &lambda.InvokeInput{
			FunctionName: aws.String(name),
			Payload:      []byte(payload(t, "uploads", key)),
		})
		require.NoError(t, err, "function %s", name)

		assert.Equal(t, int32(http.StatusOK), out.StatusCode)
		assert.Nil(t, out.FunctionError)
		assert.JSONEq(t, `{"statusCode": 200, "body": "Success"}`, string(out.Payload))

		_, ok := memory.Get(key)
		assert.True(t, ok, "entry for %s", name)
	}

	assert.Equal(t, 2, memory.Len())
}

func TestInvokeBadlyEscapedFunction(t *testing.T) {
	memory := store.NewMemoryStore()
	cfg := settings.DefaultConfig()
	mux := rainbowhttp.NewChiMux(rainbowhttp.NewInvokeHandler(cfg, service.NewFileDataService(cfg, memory)))

	request := httptest.NewRequest(http.MethodPost, "/2015-03-31/functions/filedata/invocations", strings.NewReader(payload(t, "b", "k.txt")))
	request.URL.RawPath = "/2015-03-31/functions/file%zzdata/invocations"
	recorder := httptest.NewRecorder()

	mux.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, 0, memory.Len())
}
