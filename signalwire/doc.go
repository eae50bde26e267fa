// Package signalwire provides a client for interacting with the SignalWire REST API.
//
// SignalWire is a cloud communications platform. This package covers the
// relay REST endpoints (JWT exchange, owned numbers, lookup) and the
// LaML compatibility endpoints (available numbers, messages, subprojects).
//
// # Usage
//
// Create a new client with your space name, project ID and API key:
//
//	logger := zerolog.New(os.Stdout)
//	client, err := signalwire.NewClient(
//		"example",
//		"your-project-id",
//		"your-api-key",
//		logger,
//		signalwire.WithTimeout(30*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	msg, err := client.SendSMS(ctx, signalwire.SMSMessage{
//		From: "+15551234567",
//		To:   "+15559876543",
//		Body: "hi",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(msg.SID, msg.MessageStatus())
//
// Query parameters are built with ordered builders:
//
//	params := signalwire.NewAvailableNumberParams().
//		AreaCode("206").
//		SmsEnabled(true).
//		Build()
//	numbers, err := client.SearchAvailableNumbers(ctx, "US", params)
//
// Callers without a context can use the blocking view, which gives each call
// its own context:
//
//	jwt, err := client.Blocking(10 * time.Second).GetJWT()
//
// # Error Handling
//
// Every failed call returns a *Error of one of four kinds:
//
//   - KindTransport: the request never got a response
//   - KindUnauthorized: the server returned 401
//   - KindNotFound: a 404 on an endpoint addressed by identifier
//   - KindUnexpected: any other error status, or a body that does not match
//     the expected schema
//
// The kinds match the sentinel errors with errors.Is:
//
//	if errors.Is(err, signalwire.ErrNotFound) {
//		// Handle missing resource
//	}
//
// Nothing is retried.
package signalwire
