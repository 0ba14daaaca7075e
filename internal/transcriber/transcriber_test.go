package transcriber

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"google.golang.org/protobuf/types/known/durationpb"

	"cloud.google.com/go/speech/apiv1/speechpb"
)

func TestFormatTranscript(t *testing.T) {
	resp := &speechpb.LongRunningRecognizeResponse{
		Results: []*speechpb.SpeechRecognitionResult{
			{
				Alternatives: []*speechpb.SpeechRecognitionAlternative{
					{Transcript: "Hello and welcome."},
				},
				ResultEndTime: durationpb.New(4 * time.Second),
			},
			{
				Alternatives: []*speechpb.SpeechRecognitionAlternative{
					{Transcript: " Today we talk about pipelines. "},
				},
				ResultEndTime: durationpb.New(75 * time.Second),
			},
		},
	}

	got := formatTranscript(resp)
	want := "[00:04] Hello and welcome.\n[01:15] Today we talk about pipelines."
	assert.Equal(t, want, got)
}

func TestFormatTranscriptSkipsEmptySegments(t *testing.T) {
	resp := &speechpb.LongRunningRecognizeResponse{
		Results: []*speechpb.SpeechRecognitionResult{
			{Alternatives: nil},
			{
				Alternatives:  []*speechpb.SpeechRecognitionAlternative{{Transcript: "   "}},
				ResultEndTime: durationpb.New(time.Second),
			},
		},
	}

	assert.Empty(t, formatTranscript(resp))
}
