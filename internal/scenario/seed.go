package scenario

import "fmt"

func init() {
	if err := validateScenarios(seedScenarios); err != nil {
		panic(fmt.Sprintf("seed scenario data invalid: %v", err))
	}
	g = buildGraph(seedScenarios)
}

// seedScenarios is the built-in scenario library. Choice IDs are globally
// unique; each scenario owns a hundred-block (1xx, 2xx, 3xx).
var seedScenarios = []Scenario{
	{
		ID:            1,
		Title:         "An Anxious Afternoon",
		Category:      "dementia-care",
		Difficulty:    DifficultyIntro,
		EstimatedMins: 10,
		Nodes: []Node{
			{
				Key: StartKey,
				Content: "Mrs. Alvarez, who lives with mid-stage dementia, is pacing the " +
					"corridor and wringing her hands. She tells you her daughter is coming " +
					"to take her home, though her daughter visited yesterday and no visit " +
					"is planned today.",
				Question: "How do you respond?",
				Choices: []Choice{
					{
						ID:             101,
						Label:          "Acknowledge her feelings and ask her to tell you about her daughter",
						NextNodeKey:    "validation_response",
						IsBestPractice: true,
						Feedback: "Validation meets the person in their emotional reality " +
							"instead of contradicting it, which lowers distress.",
					},
					{
						ID:                 102,
						Label:              "Gently steer her toward the lounge and the photo albums she enjoys",
						NextNodeKey:        "redirect_response",
						IsValidAlternative: true,
						Feedback: "Redirection can work when the person is receptive, though it " +
							"skips past the feeling driving the behaviour.",
					},
					{
						ID:          103,
						Label:       "Explain that her daughter came yesterday and is not coming today",
						NextNodeKey: "reality_check",
						Feedback: "Correcting the facts rarely lands in mid-stage dementia; it " +
							"usually reads as an argument and raises anxiety.",
					},
				},
			},
			{
				Key: "validation_response",
				Content: "Mrs. Alvarez slows her pacing. \"She's bringing the baby,\" she says, " +
					"and her hands settle. She starts telling you about the day her daughter " +
					"was born.",
				Question:           "She is calmer but still by the door. What next?",
				ClientStatusImpact: 5,
				WellbeingImpact:    5,
				Choices: []Choice{
					{
						ID:             104,
						Label:          "Sit with her and keep the conversation on her daughter",
						NextNodeKey:    "calm_ending",
						IsBestPractice: true,
						Feedback: "Staying with the connection you built turns a crisis into a " +
							"positive interaction she may carry for hours.",
					},
					{
						ID:                 105,
						Label:              "Offer her a cup of tea in the lounge and check back shortly",
						NextNodeKey:        "settled_ending",
						IsValidAlternative: true,
						Feedback: "A familiar routine can hold the calm, though breaking off " +
							"risks the anxiety returning.",
					},
					{
						ID:          106,
						Label:       "Excuse yourself to continue the medication round",
						NextNodeKey: "escalation",
						Feedback: "Leaving at the moment of connection abandons the work the " +
							"validation just did.",
					},
				},
			},
			{
				Key: "redirect_response",
				Content: "She lets you walk her toward the lounge, glancing back at the door. " +
					"At the albums she pauses over a photograph of her daughter's wedding.",
				Question:           "Her attention is holding, just. What next?",
				ClientStatusImpact: 2,
				WellbeingImpact:    2,
				Choices: []Choice{
					{
						ID:             107,
						Label:          "Use the photo to talk about her daughter and how much she misses her",
						NextNodeKey:    "calm_ending",
						IsBestPractice: true,
						Feedback: "Folding validation into the redirection addresses the feeling " +
							"the pacing was expressing.",
					},
					{
						ID:          108,
						Label:       "Keep the conversation firmly away from her daughter",
						NextNodeKey: "escalation",
						Feedback: "Avoiding the subject leaves the underlying need unmet; the " +
							"anxiety tends to resurface harder.",
					},
				},
			},
			{
				Key: "reality_check",
				Content: "\"That's not true!\" Her voice rises. \"She told me she's coming.\" " +
					"She pulls at the door handle, more agitated than before.",
				Question:           "The correction has upset her. How do you recover?",
				ClientStatusImpact: -10,
				WellbeingImpact:    -5,
				Choices: []Choice{
					{
						ID:             109,
						Label:          "Apologize, drop the correction, and ask about her daughter",
						NextNodeKey:    "validation_response",
						IsBestPractice: true,
						Feedback: "Recovering with validation repairs the rupture; arguing the " +
							"point never will.",
					},
					{
						ID:          110,
						Label:       "Repeat the facts more firmly so she understands",
						NextNodeKey: "escalation",
						Feedback: "Insisting on orientation against her reality escalates " +
							"distress and erodes trust.",
					},
				},
			},
			{
				Key: "escalation",
				Content: "Mrs. Alvarez is now shouting for her daughter and pushing at the " +
					"door. Other residents are becoming unsettled. You feel your own " +
					"frustration rising.",
				Question:           "The situation is escalating. What do you do?",
				ClientStatusImpact: -15,
				WellbeingImpact:    -10,
				Choices: []Choice{
					{
						ID:                 111,
						Label:              "Call a colleague for support and give her space to settle",
						NextNodeKey:        "supported_ending",
						IsValidAlternative: true,
						Feedback: "Recognizing you need support is good practice once a " +
							"situation has escalated past one-to-one de-escalation.",
					},
					{
						ID:          112,
						Label:       "Take her arm and insist she sits down",
						NextNodeKey: "crisis_ending",
						Feedback: "Physical insistence during agitation is unsafe for you both " +
							"and breaches restraint guidance.",
					},
				},
			},
			{
				Key: "calm_ending",
				Content: "Twenty minutes later Mrs. Alvarez is settled in her chair, still " +
					"talking warmly about her daughter. The afternoon continues peacefully, " +
					"and you leave the interaction feeling steady.",
				IsEnding:           true,
				ClientStatusImpact: 15,
				WellbeingImpact:    10,
			},
			{
				Key: "settled_ending",
				Content: "She accepts the tea and sits by the window. When you check back she " +
					"is calm, though she asks about her daughter again an hour later.",
				IsEnding:           true,
				ClientStatusImpact: 10,
				WellbeingImpact:    5,
			},
			{
				Key: "supported_ending",
				Content: "With a colleague's help and some space, Mrs. Alvarez gradually " +
					"settles. The unit is calm again, but the episode has drained you both.",
				IsEnding:           true,
				ClientStatusImpact: 5,
				WellbeingImpact:    0,
			},
			{
				Key: "crisis_ending",
				Content: "Mrs. Alvarez pulls away and stumbles against the door. She is " +
					"unhurt but frightened, and an incident report is required. The shift " +
					"ends with everyone shaken.",
				IsEnding:           true,
				ClientStatusImpact: -20,
				WellbeingImpact:    -20,
			},
		},
	},
	{
		ID:            2,
		Title:         "The Refused Tablets",
		Category:      "medication",
		Difficulty:    DifficultyStandard,
		EstimatedMins: 8,
		Nodes: []Node{
			{
				Key: StartKey,
				Content: "Mr. Okafor pushes the medication cup away. \"I'm not taking those. " +
					"They make me feel like a stranger in my own head.\" His blood pressure " +
					"medication is among them.",
				Question: "How do you respond to the refusal?",
				Choices: []Choice{
					{
						ID:             201,
						Label:          "Ask what the tablets make him feel like and listen",
						NextNodeKey:    "explore_refusal",
						IsBestPractice: true,
						Feedback: "Refusal is information. Exploring it respects his autonomy " +
							"and often surfaces a solvable problem.",
					},
					{
						ID:                 202,
						Label:              "Accept the refusal, record it, and offer to return in half an hour",
						NextNodeKey:        "deferred_attempt",
						IsValidAlternative: true,
						Feedback: "A documented deferral respects his right to refuse while " +
							"keeping the door open.",
					},
					{
						ID:          203,
						Label:       "Remind him the doctor said he must take them every day",
						NextNodeKey: "authority_push",
						Feedback: "Leading with authority turns a care conversation into a " +
							"compliance contest.",
					},
				},
			},
			{
				Key: "explore_refusal",
				Content: "\"Foggy,\" he says. \"By lunch I can't follow the cricket.\" You " +
					"recall his sedative dose was increased two weeks ago, around when the " +
					"complaints began.",
				Question:           "He has given you something concrete. What do you do with it?",
				ClientStatusImpact: 5,
				WellbeingImpact:    5,
				Choices: []Choice{
					{
						ID:             204,
						Label:          "Flag the fogginess to the prescriber and agree a plan with him for today",
						NextNodeKey:    "review_ending",
						IsBestPractice: true,
						Feedback: "Closing the loop with the prescriber treats his experience " +
							"as clinical evidence, because it is.",
					},
					{
						ID:                 205,
						Label:              "Suggest he takes the blood pressure tablet now and discuss the rest later",
						NextNodeKey:        "partial_ending",
						IsValidAlternative: true,
						Feedback: "Prioritizing the highest-risk medication is a reasonable " +
							"compromise, though the underlying issue still needs escalating.",
					},
					{
						ID:          206,
						Label:       "Reassure him the fogginess is normal and press on",
						NextNodeKey: "authority_push",
						Feedback: "Dismissing a reported side effect discards exactly the " +
							"information the conversation earned.",
					},
				},
			},
			{
				Key: "deferred_attempt",
				Content: "Half an hour later he is calmer, watching the cricket. He eyes the " +
					"cup but doesn't push it away.",
				Question:           "Second attempt. How do you open?",
				ClientStatusImpact: 0,
				WellbeingImpact:    2,
				Choices: []Choice{
					{
						ID:             207,
						Label:          "Ask how he's been feeling on the tablets lately",
						NextNodeKey:    "explore_refusal",
						IsBestPractice: true,
						Feedback: "The deferral bought goodwill; spending it on curiosity " +
							"rather than another request is what makes it work.",
					},
					{
						ID:          208,
						Label:       "Hand him the cup while he's distracted by the match",
						NextNodeKey: "trust_break",
						Feedback: "Slipping medication past someone's attention undermines " +
							"consent, even when it works.",
					},
				},
			},
			{
				Key: "authority_push",
				Content: "His jaw sets. \"Then the doctor can come and take them himself.\" " +
					"The cup stays on the table, and the warmth has gone out of the room.",
				Question:           "The direct approach has hardened the refusal. Now what?",
				ClientStatusImpact: -10,
				WellbeingImpact:    -5,
				Choices: []Choice{
					{
						ID:                 209,
						Label:              "Step back, apologize for pushing, and ask what's behind the refusal",
						NextNodeKey:        "explore_refusal",
						IsValidAlternative: true,
						Feedback: "Repair is possible, though the earlier push has made the " +
							"conversation harder than it needed to be.",
					},
					{
						ID:          210,
						Label:       "Document the refusal and leave without further discussion",
						NextNodeKey: "walkaway_ending",
						Feedback: "Recording the refusal is required, but leaving the reason " +
							"unexplored leaves the risk unmanaged.",
					},
				},
			},
			{
				Key: "trust_break",
				Content: "He catches the move and puts the cup down hard. \"I see how it " +
					"is.\" He turns off the television and asks you to leave.",
				Question:           "Trust is damaged. What do you do?",
				ClientStatusImpact: -15,
				WellbeingImpact:    -10,
				Choices: []Choice{
					{
						ID:                 211,
						Label:              "Apologize honestly and give him space, noting it for handover",
						NextNodeKey:        "walkaway_ending",
						IsValidAlternative: true,
						Feedback: "An honest apology and an accurate handover is the best " +
							"available exit from a self-inflicted rupture.",
					},
					{
						ID:          212,
						Label:       "Laugh it off and try again with the cup",
						NextNodeKey: "refusal_ending",
						Feedback: "Minimizing the breach compounds it; the refusal is now " +
							"about you, not the tablets.",
					},
				},
			},
			{
				Key: "review_ending",
				Content: "The prescriber halves the sedative dose that week. Mr. Okafor takes " +
					"his tablets with breakfast and narrates the cricket to anyone who will " +
					"listen. He thanks you, twice.",
				IsEnding:           true,
				ClientStatusImpact: 15,
				WellbeingImpact:    10,
			},
			{
				Key: "partial_ending",
				Content: "He takes the blood pressure tablet and you log the rest as refused " +
					"with his reported side effects. The immediate risk is covered; the " +
					"review request sits in the queue.",
				IsEnding:           true,
				ClientStatusImpact: 8,
				WellbeingImpact:    5,
			},
			{
				Key: "walkaway_ending",
				Content: "The refusal is documented and handed over. Nothing worse happens " +
					"today, but tomorrow's shift inherits the same standoff.",
				IsEnding:           true,
				ClientStatusImpact: -5,
				WellbeingImpact:    -5,
			},
			{
				Key: "refusal_ending",
				Content: "He refuses everything for the rest of the day and asks the manager " +
					"for a different worker. Rebuilding this relationship will take weeks.",
				IsEnding:           true,
				ClientStatusImpact: -15,
				WellbeingImpact:    -15,
			},
		},
	},
	{
		ID:            3,
		Title:         "Running on Empty",
		Category:      "self-care",
		Difficulty:    DifficultyStandard,
		EstimatedMins: 6,
		Nodes: []Node{
			{
				Key: StartKey,
				Content: "It is the last hour of a double shift. You have two care plans to " +
					"update, and Mr. Drummond has just asked, for the fourth time, whether " +
					"you'll sit with him while he eats. You notice your patience fraying.",
				Question: "What do you do?",
				Choices: []Choice{
					{
						ID:             301,
						Label:          "Tell him honestly you can sit for ten minutes, and actually sit",
						NextNodeKey:    "honest_limit",
						IsBestPractice: true,
						Feedback: "A bounded, kept promise protects both the relationship and " +
							"your remaining reserves.",
					},
					{
						ID:                 302,
						Label:              "Ask a colleague whether she can sit with him tonight",
						NextNodeKey:        "delegate",
						IsValidAlternative: true,
						Feedback: "Delegating when depleted is legitimate, provided the handoff " +
							"is a request and not an offload.",
					},
					{
						ID:          303,
						Label:       "Say \"in a minute\" and keep working on the care plans",
						NextNodeKey: "brushoff",
						Feedback: "A deferral you don't intend to keep is a small broken " +
							"promise, and residents keep count.",
					},
				},
			},
			{
				Key: "honest_limit",
				Content: "Ten minutes of quiet company. He eats better with someone there, " +
					"and the sitting turns out to be the first pause you've taken all shift.",
				Question:           "The ten minutes are up and the care plans remain. How do you close?",
				ClientStatusImpact: 8,
				WellbeingImpact:    5,
				Choices: []Choice{
					{
						ID:             304,
						Label:          "Tell him you enjoyed it, keep your word, and flag your fatigue at handover",
						NextNodeKey:    "steady_ending",
						IsBestPractice: true,
						Feedback: "Naming fatigue at handover is a professional act, not an " +
							"admission of weakness.",
					},
					{
						ID:          305,
						Label:       "Stay until he finishes, then rush the care plans",
						NextNodeKey: "overrun_ending",
						Feedback: "Overrunning your own limit converts a sustainable kindness " +
							"into borrowed time, repaid with errors.",
					},
				},
			},
			{
				Key: "delegate",
				Content: "Your colleague agrees without hesitation and pulls up a chair. " +
					"You finish one care plan, and the guilt sits with you through the other.",
				Question:           "The shift is nearly over. What do you do with that feeling?",
				ClientStatusImpact: 5,
				WellbeingImpact:    2,
				Choices: []Choice{
					{
						ID:                 306,
						Label:              "Mention the guilt and the double shift to your supervisor",
						NextNodeKey:        "steady_ending",
						IsValidAlternative: true,
						Feedback: "Surfacing the pattern gives the rota a chance to change; " +
							"swallowing it guarantees a repeat.",
					},
					{
						ID:          307,
						Label:       "Shrug it off; it all got done, didn't it",
						NextNodeKey: "drained_ending",
						Feedback: "The tasks got done. The pattern that made them barely " +
							"doable is still running.",
					},
				},
			},
			{
				Key: "brushoff",
				Content: "Mr. Drummond eats half his meal alone and leaves the tray. You " +
					"finish the care plans on time and feel worse, not better.",
				Question:           "There are twenty minutes left on shift. What now?",
				ClientStatusImpact: -8,
				WellbeingImpact:    -5,
				Choices: []Choice{
					{
						ID:                 308,
						Label:              "Go back, apologize, and sit with him for the time you have",
						NextNodeKey:        "steady_ending",
						IsValidAlternative: true,
						Feedback: "A late repair is smaller than the kept promise would have " +
							"been, but it is far better than none.",
					},
					{
						ID:          309,
						Label:       "Clock out; it will be someone else's problem at breakfast",
						NextNodeKey: "drained_ending",
						Feedback: "Unrepaired small breaches accumulate into exactly the " +
							"disconnection that makes this work exhausting.",
					},
				},
			},
			{
				Key: "steady_ending",
				Content: "You leave the building tired but intact, and the evening notes " +
					"record a resident who ate well. The rota gets looked at; sometimes " +
					"that is the whole victory.",
				IsEnding:           true,
				ClientStatusImpact: 10,
				WellbeingImpact:    10,
			},
			{
				Key: "overrun_ending",
				Content: "The care plans get done, late and thin. You drive home past your " +
					"turn-off. The kindness was real, but so is the cost of ignoring your " +
					"own limits.",
				IsEnding:           true,
				ClientStatusImpact: 5,
				WellbeingImpact:    -10,
			},
			{
				Key: "drained_ending",
				Content: "Everything on the list is ticked. Nothing in the room feels " +
					"finished. You sleep badly and start tomorrow already behind.",
				IsEnding:           true,
				ClientStatusImpact: -5,
				WellbeingImpact:    -15,
			},
		},
	},
}
