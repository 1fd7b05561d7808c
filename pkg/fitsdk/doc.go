/*
Package fitsdk provides a client SDK for the FitTrack service.

The Client signs in with username/password and holds the resulting session
cookie in its HTTP client's jar, so subsequent calls are authenticated
automatically:

	client := fitsdk.NewClient("https://fittrack.example.com")

	_, err := client.Login(ctx, "alice", "Passw0rd!")
	if err != nil {
		// credentials rejected
	}

	workouts, err := client.ListWorkouts(ctx, 1)

The request/response types in this package are the wire contract of the
service; the server's HTTP handlers use them too.
*/
package fitsdk
