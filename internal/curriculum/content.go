package curriculum

// authored holds weeks with hand-written content. Everything else comes
// from generateWeek.
var authored = map[int]Week{
	1: {
		Week:  1,
		Title: "Sitting at the Piano",
		Focus: "posture, hand shape and the keyboard map",
		Days: []Day{
			{
				Day:   1,
				Type:  InfoDump,
				Title: "Welcome to the Keyboard",
				Objectives: []string{
					"Set up your bench height and distance",
					"Find every C on the keyboard using the two-black-key groups",
				},
				Content: "Sit at the front half of the bench with your forearms level with the keys. " +
					"The black keys come in groups of two and three; C is always the white key just left of a two-black-key group. " +
					"Today you only need to find Cs and say their names out loud.",
				Exercises: []Exercise{{
					ID:             "w01-d1-find-c",
					Title:          "Find Every C",
					Description:    "Play each C from the bottom of the keyboard to the top with finger 3.",
					Notation:       "RH: C1 C2 C3 C4 C5 C6 C7",
					TargetTempo:    50,
					Tips:           []string{"Look for the two-black-key groups first", "Say \"C\" each time you play"},
					CommonMistakes: []string{"Confusing C with F (left of the three-black-key group)", "Slumping toward the keys"},
				}},
			},
			{
				Day:   2,
				Type:  Practice,
				Title: "Hand Shape",
				Objectives: []string{
					"Play with curved fingers and a relaxed wrist",
					"Play C-D-E with fingers 1-2-3",
				},
				Content: "Let your hands hang by your sides, then bring them to the keys without changing their shape. " +
					"That natural curve is your playing shape. Play C, D and E slowly with the right hand, then the left.",
				Exercises: []Exercise{{
					ID:             "w01-d2-cde",
					Title:          "C-D-E Steps",
					Description:    "Play C-D-E up and back down with each hand.",
					Notation:       "RH: C D E D C | LH: C D E D C",
					TargetTempo:    55,
					Tips:           []string{"Play on the fingertips, not the pads", "Keep the thumb resting on the key"},
					CommonMistakes: []string{"Flat, collapsed fingers", "Lifting the wrist to push the keys"},
				}},
			},
			{
				Day:   3,
				Type:  Practice,
				Title: "All Five Fingers",
				Objectives: []string{
					"Extend the pattern to C-D-E-F-G",
					"Keep an even sound across all five fingers",
				},
				Content: "Place fingers 1 to 5 on C to G. Play up and down, listening for any note that is louder or softer than its neighbours.",
				Exercises: []Exercise{{
					ID:             "w01-d3-five",
					Title:          "Five-Finger Walk",
					Description:    "Play C to G and back with each hand separately.",
					Notation:       "RH: C D E F G | G F E D C",
					TargetTempo:    60,
					Tips:           []string{"Finger 4 is weakest; give it extra attention", "Breathe between repetitions"},
					CommonMistakes: []string{"Rushing the way down", "Letting finger 5 collapse"},
				}},
			},
			{
				Day:   4,
				Type:  Practice,
				Title: "Black Key Groups",
				Objectives: []string{
					"Play all two-black-key and three-black-key groups",
					"Move up the keyboard without looking down each time",
				},
				Content: "Play every two-black-key group with fingers 2 and 3, then every three-black-key group with 2, 3 and 4. " +
					"This builds the map of the keyboard you will rely on for the whole year.",
				Exercises: []Exercise{{
					ID:             "w01-d4-groups",
					Title:          "Group Hopping",
					Description:    "Alternate two-key and three-key groups up the keyboard.",
					Notation:       "RH: [C# D#] [F# G# A#] | repeat up",
					TargetTempo:    60,
					Tips:           []string{"Feel the gaps between groups with your fingertips", "Glance, then play"},
					CommonMistakes: []string{"Staring at the keys the whole time", "Tense thumb hanging off the keyboard"},
				}},
			},
			{
				Day:   5,
				Type:  Practice,
				Title: "Both Hands, Separately",
				Objectives: []string{
					"Play the five-finger walk in both hands one after the other",
					"Match the sound of the left hand to the right",
				},
				Content: "Play the C-G walk with the right hand, then immediately with the left. The left hand plays the same notes an octave lower.",
				Exercises: []Exercise{{
					ID:             "w01-d5-alternate",
					Title:          "Hand Relay",
					Description:    "Right hand up and down, then left hand up and down, without a pause.",
					Notation:       "RH: C D E F G F E D C | LH: C D E F G F E D C",
					TargetTempo:    65,
					Tips:           []string{"Place the next hand while the first is finishing", "Count out loud"},
					CommonMistakes: []string{"Pausing between hands", "Using the wrong finger numbers in the left hand"},
				}},
			},
			{
				Day:   6,
				Type:  Practice,
				Title: "Slow and Steady",
				Objectives: []string{
					"Play the five-finger walk at 70 BPM",
					"Keep posture steady for a full five minutes",
				},
				Content: "Set a metronome to 60 and play the hand relay. Every three clean repetitions, add 5 BPM until you reach 70.",
				Exercises: []Exercise{{
					ID:             "w01-d6-metronome",
					Title:          "Metronome Ladder",
					Description:    "Climb from 60 to 70 BPM in 5 BPM steps.",
					Notation:       "RH: C D E F G F E D C @60 > @65 > @70",
					TargetTempo:    70,
					Tips:           []string{"Only move up after three clean runs", "Check your shoulders between runs"},
					CommonMistakes: []string{"Jumping to the top tempo straight away", "Ignoring the click"},
				}},
			},
			{
				Day:   7,
				Type:  Review,
				Title: "Week 1 Checkpoint",
				Objectives: []string{
					"Show good posture and hand shape",
					"Play the five-finger walk in both hands at 70 BPM",
				},
				Content: "Run through everything from this week, then work through the checkpoint honestly.",
				Exercises: []Exercise{{
					ID:             "w01-d7-review",
					Title:          "Week 1 Review Run",
					Description:    "Find Cs, then play the hand relay at 70 BPM.",
					Notation:       "RH: C D E F G F E D C | LH: C D E F G F E D C",
					TargetTempo:    70,
					Tips:           []string{"Warm up with the C-D-E steps first", "Record yourself if you can"},
					CommonMistakes: []string{"Skipping the warm-up", "Judging yourself on one bad run"},
				}},
				Checkpoint: []string{
					"I can find any C on the keyboard in under two seconds",
					"I play with curved fingers and a level wrist",
					"I can play C-D-E-F-G and back in each hand at 70 BPM",
				},
			},
		},
	},
	2: {
		Week:  2,
		Title: "Five-Finger Position",
		Focus: "finger numbers and the C position",
		Days: []Day{
			{
				Day:   1,
				Type:  InfoDump,
				Title: "Finger Numbers",
				Objectives: []string{
					"Learn finger numbers 1-5 for both hands",
					"Understand why fingering is written above notes",
				},
				Content: "Thumbs are 1 and little fingers are 5 in both hands. Written fingering tells you which finger " +
					"to use so your hand is already in the right place for the next note.",
				Exercises: []Exercise{{
					ID:             "w02-d1-numbers",
					Title:          "Call and Play",
					Description:    "Say a finger number, then play it in C position.",
					Notation:       "RH: 1 3 5 2 4 | LH: 5 3 1 4 2",
					TargetTempo:    50,
					Tips:           []string{"Say the number before you play", "Mix the order up"},
					CommonMistakes: []string{"Mirroring the hands wrongly", "Looking at the hand instead of thinking"},
				}},
			},
			{
				Day:   2,
				Type:  Practice,
				Title: "Skips",
				Objectives: []string{"Play skips C-E-G in each hand", "Keep unused fingers resting on their keys"},
				Content:    "Skips jump over one key. Play C-E-G with fingers 1-3-5 and keep 2 and 4 hovering over D and F.",
				Exercises: []Exercise{{
					ID:             "w02-d2-skips",
					Title:          "C-E-G Skips",
					Description:    "Play C-E-G up and down.",
					Notation:       "RH: C E G E C | LH: C E G E C",
					TargetTempo:    60,
					Tips:           []string{"Keep the hand still; only fingers move"},
					CommonMistakes: []string{"Shifting the hand on every skip"},
				}},
			},
			{
				Day:   3,
				Type:  Practice,
				Title: "Steps and Skips",
				Objectives: []string{"Mix steps and skips in one pattern", "Read finger numbers instead of note names"},
				Content:    "Combine step and skip patterns. Read the finger numbers and play without naming notes.",
				Exercises: []Exercise{{
					ID:             "w02-d3-mix",
					Title:          "Step-Skip Pattern",
					Description:    "Alternate stepping and skipping.",
					Notation:       "RH: 1 2 3 5 | 5 4 3 1",
					TargetTempo:    62,
					Tips:           []string{"Think in shapes, not letters"},
					CommonMistakes: []string{"Playing 4 instead of 5 on the skip"},
				}},
			},
			{
				Day:   4,
				Type:  Practice,
				Title: "Left Hand Leads",
				Objectives: []string{"Play the step-skip pattern with the left hand first", "Even out left hand tone"},
				Content:    "Most beginners have a weaker left hand. Lead with it today and match the right hand to it.",
				Exercises: []Exercise{{
					ID:             "w02-d4-left",
					Title:          "Left Hand Lead",
					Description:    "Left hand step-skip, then right hand echo.",
					Notation:       "LH: 5 4 3 1 | RH: 1 2 3 5",
					TargetTempo:    64,
					Tips:           []string{"Listen for equal volume between the hands"},
					CommonMistakes: []string{"Letting the left hand rush to catch up"},
				}},
			},
			{
				Day:   5,
				Type:  Practice,
				Title: "First Melody",
				Objectives: []string{"Play a short melody in C position", "Keep a steady pulse from start to finish"},
				Content:    "Play the opening of Ode to Joy using only C position. Fingering is given; keep your eyes on it.",
				Exercises: []Exercise{{
					ID:             "w02-d5-ode",
					Title:          "Ode to Joy Opening",
					Description:    "First two phrases of Ode to Joy.",
					Notation:       "RH: E E F G | G F E D | C C D E | E/2 D/4 D/2",
					TargetTempo:    66,
					Tips:           []string{"Count the dotted rhythm at the end", "Play it slowly twice before adding tempo"},
					CommonMistakes: []string{"Cutting the final D short", "Starting on the wrong finger"},
				}},
			},
			{
				Day:   6,
				Type:  Practice,
				Title: "Melody at Tempo",
				Objectives: []string{"Play the Ode to Joy opening at 72 BPM", "Play it three times without stopping"},
				Content:    "Use the metronome ladder from last week to bring the melody up to 72 BPM.",
				Exercises: []Exercise{{
					ID:             "w02-d6-ode-tempo",
					Title:          "Ode to Joy Ladder",
					Description:    "Climb to 72 BPM.",
					Notation:       "RH: E E F G | G F E D | C C D E | E/2 D/4 D/2 @62 > @67 > @72",
					TargetTempo:    72,
					Tips:           []string{"Stay relaxed as the tempo climbs"},
					CommonMistakes: []string{"Tensing up on the last step of the ladder"},
				}},
			},
			{
				Day:   7,
				Type:  Review,
				Title: "Week 2 Checkpoint",
				Objectives: []string{"Play from finger numbers alone", "Perform the Ode to Joy opening at 72 BPM"},
				Content:    "Play through the week's drills and the melody, then go through the checkpoint.",
				Exercises: []Exercise{{
					ID:             "w02-d7-review",
					Title:          "Week 2 Review Run",
					Description:    "Step-skip pattern in both hands, then the melody.",
					Notation:       "RH: 1 2 3 5 | LH: 5 4 3 1 | RH: Ode to Joy opening",
					TargetTempo:    72,
					Tips:           []string{"Warm up with skips first"},
					CommonMistakes: []string{"Rushing because it is the last day"},
				}},
				Checkpoint: []string{
					"I can play any finger number called out without looking",
					"I can play C-E-G skips with a still hand",
					"I can play the Ode to Joy opening at 72 BPM three times in a row",
				},
			},
		},
	},
}
