package curriculum

import "fmt"

type weekTopic struct {
	title    string
	focus    string
	skill    string
	notation string
}

// topics holds the title and focus of every week. Weeks without authored
// content are generated from these.
var topics = [TotalWeeks]weekTopic{
	// Foundation
	{"Sitting at the Piano", "posture, hand shape and the keyboard map", "finding C and moving by step", "RH: C D E F G | G F E D C"},
	{"Five-Finger Position", "finger numbers and the C position", "playing 1-2-3-4-5 evenly", "RH: 1 2 3 4 5 | 5 4 3 2 1"},
	{"Counting Rhythm", "quarter, half and whole notes", "clapping and playing steady beats", "RH: C/4 C/4 D/2 | E/1"},
	{"The Grand Staff", "treble and bass clef landmarks", "naming notes from landmark Cs", "RH: C4 G4 C5 | LH: C3 F3 C4"},
	{"C Major Patterns", "five-finger patterns in C major", "moving patterns up and down the keyboard", "RH: C E G E C | D F A F D"},
	{"Left Hand Bass", "single bass notes under a pulse", "holding roots while counting", "LH: C2/1 | F2/1 | G2/1 | C2/1"},
	{"Steady Pulse", "playing with a metronome", "keeping time across bar lines", "RH: C D E F | G/2 G/2 | F E D C"},
	{"Foundation Review", "consolidating posture, reading and rhythm", "playing a short piece start to finish", "RH: E D C D | E E E/2 | D D D/2 | E G G/2"},
	// Song Introduction
	{"Choosing Your Song", "listening for melody, chords and structure", "mapping the song form", "FORM: intro verse chorus verse chorus outro"},
	{"Melody Phrase One", "the first melodic phrase", "learning the phrase by ear and on paper", "RH: E E F G | G F E D"},
	{"Melody Phrase Two", "the answering phrase", "linking phrase one to phrase two", "RH: C C D E | E/2 D/4 D/2"},
	{"Eighth Notes", "subdividing the beat", "counting 1-and-2-and", "RH: C/8 D/8 E/8 F/8 G/2"},
	{"Chords I, IV and V", "the three primary chords", "switching between C, F and G", "LH: [C E G] [F A C] [G B D] [C E G]"},
	{"Left Hand Accompaniment", "simple root-fifth patterns", "keeping the left hand steady", "LH: C G C G | F C F C"},
	{"Dynamics", "playing soft and loud on purpose", "shaping a phrase with volume", "RH: p C D E | mf F G | f A G F"},
	{"Melody Run-Through", "the full melody hands separately", "playing the melody without stopping", "RH: verse | chorus"},
	// Hands Together
	{"Hands Together Basics", "first coordination between hands", "playing one note per hand together", "RH: C/1 | LH: C3/1"},
	{"Block Chords Under Melody", "holding chords while the melody moves", "changing chords on beat one", "RH: E F G | LH: [C E G]/1"},
	{"Coordination Drills", "independent rhythm in each hand", "quarters against halves", "RH: C/4 D/4 E/4 F/4 | LH: C3/2 G3/2"},
	{"Broken Chords", "arpeggiated left hand patterns", "rolling chords evenly", "LH: C E G E | F A C A"},
	{"Introducing the Pedal", "sustain pedal timing", "legato pedaling on chord changes", "PED: down-1 up-4 | down-1 up-4"},
	{"Verse Hands Together", "the verse with both hands", "keeping the melody above the chords", "RH: verse | LH: I IV V I"},
	{"Chorus Hands Together", "the chorus with both hands", "bringing out the chorus melody", "RH: chorus | LH: IV V I I"},
	{"Hands Together Review", "the whole song hands together", "a slow, unbroken run-through", "SONG: verse chorus verse chorus"},
	// Adding Voice
	{"Finding Your Range", "comfortable vocal range", "matching pitch to the piano", "VOICE: C4 D4 E4 F4 G4"},
	{"Singing Over Chords", "singing the melody against held chords", "pitch matching over harmony", "VOICE: melody | LH: [C E G]/1"},
	{"Breathing and Phrasing", "breath points in the lyric", "planning breaths at phrase ends", "VOICE: phrase ' phrase '"},
	{"Voice and Hands Independence", "singing while the hands move", "keeping the accompaniment steady under the voice", "VOICE: verse | LH: C G C G"},
	{"Verse With Voice", "the verse sung and played", "singing the verse with full accompaniment", "VOICE+PIANO: verse"},
	{"Chorus With Voice", "the chorus sung and played", "projecting the chorus", "VOICE+PIANO: chorus"},
	{"Transitions", "moving between sections", "clean joins from verse to chorus", "VOICE+PIANO: verse > chorus"},
	{"Voice Integration Review", "the whole song with voice", "an unbroken sung performance", "VOICE+PIANO: full song"},
	// Refinement
	{"Tempo Consistency", "holding one tempo through the song", "playing with and without the metronome", "SONG: full @ metronome"},
	{"Shaping Dynamics", "dynamic arcs across sections", "marking and playing a dynamic plan", "SONG: p verse < f chorus"},
	{"Clean Pedaling", "removing blur from the pedal", "changing pedal exactly on chord changes", "PED: change on each chord"},
	{"Expressive Timing", "rubato and breathing room", "stretching phrase ends without losing the pulse", "SONG: phrase ends rit."},
	{"Fixing Weak Spots", "targeted work on hard bars", "isolating and looping trouble spots", "LOOP: bars 9-12 x5"},
	{"Recording Yourself", "listening back critically", "recording and reviewing a run-through", "REC: full song"},
	{"Memorization", "playing without the sheet", "memorising section by section", "MEM: verse > chorus > full"},
	{"Refinement Review", "a polished, memorised run-through", "playing musically at target tempo", "SONG: full, memorised"},
	// Performance Prep
	{"Performance Run-Throughs", "playing start to finish without stopping", "daily full run-throughs", "RUN: full song x2"},
	{"Managing Nerves", "routines that calm performance nerves", "a pre-performance routine", "ROUTINE: breathe, warm up, run"},
	{"Recovering From Mistakes", "keeping going after a slip", "jumping back in at the next phrase", "RUN: full, never stop"},
	{"Stage Presence", "walking on, bowing and finishing", "presenting the song to a listener", "RUN: bow > song > bow"},
	{"Mock Performance", "a performance for a friend or camera", "performing once for an audience", "PERFORM: full song"},
	{"Polishing", "final detail work", "fixing the last rough edges", "LOOP: weakest section x5"},
	{"Dress Rehearsal", "the performance exactly as planned", "a full rehearsal with routine", "PERFORM: full routine"},
	{"Final Performance", "the culmination of the year", "performing your song", "PERFORM: final"},
}

// baseTempo ramps from 60 BPM in phase 1 to 85 BPM in phase 6.
func baseTempo(week int) int {
	return 60 + (PhaseForWeek(week)-1)*5
}

// generateWeek builds a templated week from its topic. It always satisfies
// the weekly shape checked by ValidateWeek.
func generateWeek(week int) Week {
	t := topics[week-1]
	tempo := baseTempo(week)
	days := make([]Day, 0, DaysPerWeek)

	days = append(days, Day{
		Day:   1,
		Type:  InfoDump,
		Title: "Introducing " + t.title,
		Objectives: []string{
			"Understand this week's focus: " + t.focus,
			"Preview the drill you will practice this week",
		},
		Content: fmt.Sprintf("This week is about %s. Read through the drill slowly, play it once at a comfortable tempo, "+
			"and note anything that feels awkward. The goal today is understanding, not speed.", t.focus),
		Exercises: []Exercise{generatedExercise(week, 1, t, tempo-10)},
	})

	for d := 2; d < DaysPerWeek; d++ {
		target := tempo + (d-2)*2
		days = append(days, Day{
			Day:   d,
			Type:  Practice,
			Title: fmt.Sprintf("%s: Practice %d", t.title, d-1),
			Objectives: []string{
				fmt.Sprintf("Practice %s at %d BPM", t.skill, target),
				"Play the drill three times in a row without stopping",
			},
			Content: fmt.Sprintf("Warm up for two minutes, then work on %s. Start below the target tempo "+
				"and only move up when three clean repetitions in a row feel easy.", t.skill),
			Exercises: []Exercise{generatedExercise(week, d, t, target)},
		})
	}

	days = append(days, Day{
		Day:   DaysPerWeek,
		Type:  Review,
		Title: t.title + " Review",
		Objectives: []string{
			"Demonstrate this week's skill at the target tempo",
			"Decide whether you are ready to move on",
		},
		Content:   "Play through everything from this week. Be honest with the checkpoint; repeating a week is normal.",
		Exercises: []Exercise{generatedExercise(week, DaysPerWeek, t, tempo+10)},
		Checkpoint: []string{
			fmt.Sprintf("I can play the drill for %s at %d BPM without stopping", t.skill, tempo+10),
			"I can explain what this week's focus was in my own words",
			"Nothing in this week's drill causes tension in my hands or shoulders",
		},
	})

	return Week{Week: week, Title: t.title, Focus: t.focus, Days: days}
}

func generatedExercise(week, day int, t weekTopic, tempo int) Exercise {
	return Exercise{
		ID:          fmt.Sprintf("w%02d-d%d-drill", week, day),
		Title:       t.title + " Drill",
		Description: "Work on " + t.skill + ".",
		Notation:    t.notation,
		TargetTempo: tempo,
		Tips: []string{
			"Start slower than you think you need to",
			"Keep your wrists loose and level with the keys",
		},
		CommonMistakes: []string{
			"Speeding up on the easy parts",
			"Stopping to fix mistakes instead of keeping the pulse",
		},
	}
}

func builtinWeeks() []Week {
	weeks := make([]Week, 0, TotalWeeks)
	for n := 1; n <= TotalWeeks; n++ {
		if w, ok := authored[n]; ok {
			weeks = append(weeks, w)
			continue
		}
		weeks = append(weeks, generateWeek(n))
	}
	return weeks
}
