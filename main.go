package main

import (
	"embed"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// ReleaseVersion is the version of an executable built and given to someone
// to play. It is meant as a unique label for the functionality that a player
// is presented with. ReleaseVersion must change when SimulationVersion or
// InputVersion change, but it also changes on its own: when server
// communication is toggled, when asserts are toggled, when graphics change.
const ReleaseVersion = 1

//go:embed data/*
var embeddedFiles embed.FS

type GameScreen int64

const (
	PlayScreen GameScreen = iota
	Playback
	DebugCrash
)

type Gui struct {
	Config
	UserData
	world                 World
	FSys                  FS
	folderWatcher         FolderWatcher
	defaultFont           font.Face
	imgWhite              *ebiten.Image
	playthrough           Playthrough
	frameIdx              int64
	screen                GameScreen
	playbackPaused        bool
	pressedKeys           []ebiten.Key
	justPressedKeys       []ebiten.Key // keys pressed in this frame
	FrameSkipAltArrow     int64
	FrameSkipShiftArrow   int64
	FrameSkipArrow        int64
	lastFrameTime         time.Time
	roundEnded            bool
	username              string
	uploadUserDataChannel chan UserData
	devModeEnabled        bool
}

type Config struct {
	StartState    string `yaml:"StartState"`
	PlaybackFile  string `yaml:"PlaybackFile"`
	RecordToFile  bool   `yaml:"RecordToFile"`
	RecordingFile string `yaml:"RecordingFile"`
	LoadScenario  bool   `yaml:"LoadScenario"`
	ScenarioFile  string `yaml:"ScenarioFile"`
}

func main() {
	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle("Pillar Builder")

	var g Gui
	g.playthrough.InputVersion = InputVersion
	g.playthrough.SimulationVersion = SimulationVersion
	g.playthrough.ReleaseVersion = ReleaseVersion
	g.username = getUsername()
	g.UserData = LoadUserData(g.username)
	// A channel size of 10 means the channel will buffer 10 values before it
	// blocks. Hopefully, when uploading data, a size of 10 is sufficient.
	g.uploadUserDataChannel = make(chan UserData, 10)
	go UploadUserData(g.username, g.uploadUserDataChannel)
	g.FrameSkipAltArrow = 1
	g.FrameSkipShiftArrow = 10
	g.FrameSkipArrow = 1

	if !FileExists(os.DirFS(".").(FS), "data") {
		g.FSys = &embeddedFiles
	} else {
		g.FSys = os.DirFS(".").(FS)
		g.folderWatcher.Folder = "data"
		// Initialize the watcher with the current timestamps of files so
		// that the first FolderContentsChanged() call in Update doesn't
		// immediately report a change.
		g.folderWatcher.FolderContentsChanged()
	}

	filePassedForPlayback := false
	if len(os.Args) == 2 {
		if os.Args[1] == "developer-mode-enabled" {
			g.devModeEnabled = true
		} else {
			filePassedForPlayback = true
		}
	}

	g.LoadGuiData()

	if filePassedForPlayback {
		g.StartState = "Playback"
		g.PlaybackFile = os.Args[1]
	}

	if g.StartState == "Playback" {
		g.screen = Playback
		g.playthrough = DeserializePlaythrough(ReadFile(g.PlaybackFile))
	} else if g.StartState == "DebugCrash" {
		g.screen = DebugCrash
		// Don't crash when we are debugging the crash. This is useful if the
		// crash was caused by one of my asserts:
		// - world.Step() crashed during the last frame, because my assert
		// Check(fmt.Errorf(..))
		// - Now Check() doesn't crash anymore.
		// - I can have the world.Step() with the bug execute, and I can see
		// the results visually.
		CheckCrashes = false
		g.playthrough = DeserializePlaythrough(ReadFile(g.PlaybackFile))
	} else if g.StartState == "Play" {
		g.screen = PlayScreen
		if g.LoadScenario {
			var scenario Scenario
			LoadYAML(g.FSys, g.ScenarioFile, &scenario)
			g.playthrough.Layout = scenario.GetLayout()
		} else {
			g.playthrough.Layout = DefaultLayout()
		}
		g.playthrough.Id = uuid.New()
		go InitializeIdInDbHttp(g.username, ReleaseVersion,
			SimulationVersion, InputVersion, g.playthrough.Id)
	} else {
		panic(fmt.Errorf("invalid g.StartState: %s", g.StartState))
	}

	g.world = NewWorldFromPlaythrough(g.playthrough)

	// The last input caused the crash, so run the whole playthrough except
	// the last input. This gives me a chance to see the current state of the
	// world visually, maybe place a breakpoint and inspect the state of the
	// world in the debugger, and then when I'm ready, trigger the bug.
	if g.screen == DebugCrash {
		g.frameIdx = int64(len(g.playthrough.History)) - 1
		for i := range g.frameIdx {
			g.world.Step(g.playthrough.History[i])
		}
	}

	g.lastFrameTime = time.Now()
	err := ebiten.RunGame(&g)
	Check(err)
}
