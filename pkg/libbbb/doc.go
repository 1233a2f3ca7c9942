//
// libbbb is a client of the BigBlueButton API for managing meetings and recordings.
//

// Create client
//
//	client, err := libbbb.NewDefaultClient("https://bbb.nas.lan/bigbluebutton/api", "shared-secret")
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Create a meeting
//
//	params, err := libbbb.NewCreateMeetingParameters("weekly-sync", "Weekly sync")
//	if err != nil {
//		log.Fatal(err)
//	}
//	params.AttendeePassword = "ap"
//	params.ModeratorPassword = "mp"
//	params.Record = libbbb.Bool(true)
//	params.AddPresentation("https://nas.lan/slides.pdf")
//
//	meeting, err := client.CreateMeeting(params)
//	if err != nil {
//		log.Fatal(err) // *ValidationError, *TransportError or *MalformedResponseError
//	}
//	if err = meeting.Err(); err != nil {
//		log.Fatal(err) // *APIError, the server returned FAILED
//	}
//
// Get the URL to join the meeting from a browser
//
//	join, err := libbbb.NewJoinMeetingParameters("weekly-sync", "George Abitbol", "mp")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	url, err := client.JoinMeetingURL(join)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println("Join at", url)
//
// List recordings
//
//	recordings, err := client.GetRecordings(&libbbb.GetRecordingsParameters{MeetingID: "weekly-sync"})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	for _, recording := range recordings.Recordings {
//		fmt.Println(recording.RecordID, recording.StartedAt(), recording.Published)
//	}
//
// Build URLs without network access
//
//	client, err := libbbb.NewURLClient(libbbb.Config{
//		BaseURL:   "https://bbb.nas.lan/bigbluebutton/api",
//		Secret:    "shared-secret",
//		Algorithm: libbbb.SHA256,
//	})
package libbbb
