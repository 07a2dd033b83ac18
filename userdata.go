package main

import (
	"github.com/goccy/go-yaml"
)

// UserData is the little bit of progress worth keeping across sessions. It is
// stored per user on the server as a small YAML string.
type UserData struct {
	Wins           int64   `yaml:"Wins"`
	BestAvgOpacity float64 `yaml:"BestAvgOpacity"`
}

func LoadUserData(username string) (u UserData) {
	data := GetUserDataHttp(username)
	if data == "" {
		return
	}
	if err := yaml.Unmarshal([]byte(data), &u); err != nil {
		// Corrupt or old-format user data is not worth crashing over, start
		// fresh.
		return UserData{}
	}
	return
}

// UploadUserData runs as a goroutine for the lifetime of the process. Update
// pushes fresh UserData into the channel when a round is won, so the blocking
// upload never stalls a frame.
func UploadUserData(username string, ch chan UserData) {
	for u := range ch {
		data, err := yaml.Marshal(&u)
		Check(err)
		SetUserDataHttp(username, string(data))
	}
}
