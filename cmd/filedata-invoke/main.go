// filedata-invoke sends an S3 ObjectCreated notification for a single object
// to the filedata function, either deployed or served locally.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ATenderholt/rainbow-filedata/internal/domain"
	"github.com/ATenderholt/rainbow-filedata/internal/logging"
	"github.com/ATenderholt/rainbow-filedata/internal/settings"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
	"go.uber.org/zap"
)

var logger *zap.SugaredLogger

func init() {
	logger = logging.NewLogger()
}

type options struct {
	bucket   string
	key      string
	function string
	endpoint string
	region   string
	async    bool
}

func parseFlags(name string, args []string) (options, string, error) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)

	var buf bytes.Buffer
	flags.SetOutput(&buf)

	var opts options
	flags.StringVar(&opts.bucket, "bucket", "", "Bucket named in the notification")
	flags.StringVar(&opts.key, "key", "", "Object key named in the notification")
	flags.StringVar(&opts.function, "function", settings.DefaultFunctionName, "Function name or ARN to invoke")
	flags.StringVar(&opts.endpoint, "endpoint", "", "Endpoint URL for the Lambda API, empty for the AWS default")
	flags.StringVar(&opts.region, "region", settings.DefaultRegion, "AWS region of the function")
	flags.BoolVar(&opts.async, "async", false, "Invoke with the Event invocation type")

	err := flags.Parse(args)
	if err != nil {
		return opts, buf.String(), err
	}

	if opts.bucket == "" || opts.key == "" {
		flags.Usage()
		return opts, buf.String(), fmt.Errorf("both -bucket and -key are required")
	}

	return opts, buf.String(), nil
}

func notification(bucket, key string, now time.Time) domain.Notification {
	eventTime := now.UTC().Format(domain.EventTimeFormat)
	arn := "arn:aws:s3:::" + bucket

	return domain.Notification{
		Records: []domain.LambdaRecord{
			{
				EventVersion: "2.1",
				EventSource:  "aws:s3",
				EventTime:    &eventTime,
				EventName:    domain.ObjectCreatedPut,
				S3: domain.S3Record{
					S3SchemaVersion: "1.0",
					Bucket: domain.S3Bucket{
						Name: &bucket,
						Arn:  arn,
					},
					Object: domain.S3Object{Key: &key},
				},
			},
		},
	}
}

func main() {
	opts, output, err := parseFlags(os.Args[0], os.Args[1:])
	if err == flag.ErrHelp {
		fmt.Println(output)
		os.Exit(2)
	} else if err != nil {
		fmt.Println("got error:", err)
		fmt.Println("output:\n", output)
		os.Exit(1)
	}

	ctx := context.Background()

	client, err := NewLambdaClient(ctx, opts)
	if err != nil {
		logger.Fatalf("Unable to create Lambda client: %v", err)
	}

	payload, err := json.Marshal(notification(opts.bucket, opts.key, time.Now()))
	if err != nil {
		logger.Fatalf("Unable to marshal notification: %v", err)
	}

	invocationType := types.InvocationTypeRequestResponse
	if opts.async {
		invocationType = types.InvocationTypeEvent
	}

	logger.Infof("Invoking %s for s3://%s/%s", opts.function, opts.bucket, opts.key)

	result, err := client.Invoke(ctx, &lambda.InvokeInput{
		FunctionName:   aws.String(opts.function),
		InvocationType: invocationType,
		Payload:        payload,
	})
	if err != nil {
		logger.Fatalf("Unable to invoke %s: %v", opts.function, err)
	}

	if result.FunctionError != nil {
		logger.Errorf("Function returned %s error: %s", *result.FunctionError, string(result.Payload))
		os.Exit(1)
	}

	logger.Infof("Status %d", result.StatusCode)
	if len(result.Payload) > 0 {
		fmt.Println(string(result.Payload))
	}
}
