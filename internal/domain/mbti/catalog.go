package mbti

// The fixed question catalog: 60 statements, 15 per dimension. Polarity marks
// whether agreement drives toward the first trait letter (E, S, T, J) or the
// second (I, N, F, P). The catalog is never mutated at runtime.
var catalog = []Question{
	// E/I
	{ID: "ei-1", Text: "You regularly make new friends.", Dimension: DimensionEI, Polarity: PolarityPositive},
	{ID: "ei-2", Text: "You feel comfortable in large social gatherings.", Dimension: DimensionEI, Polarity: PolarityPositive},
	{ID: "ei-3", Text: "You prefer working in a team rather than alone.", Dimension: DimensionEI, Polarity: PolarityPositive},
	{ID: "ei-4", Text: "You enjoy being the center of attention.", Dimension: DimensionEI, Polarity: PolarityPositive},
	{ID: "ei-5", Text: "You often initiate conversations with strangers.", Dimension: DimensionEI, Polarity: PolarityPositive},
	{ID: "ei-6", Text: "You feel energized after spending time with others.", Dimension: DimensionEI, Polarity: PolarityPositive},
	{ID: "ei-7", Text: "You need time alone to recharge after social events.", Dimension: DimensionEI, Polarity: PolarityNegative},
	{ID: "ei-8", Text: "You prefer deep conversations with one person over group discussions.", Dimension: DimensionEI, Polarity: PolarityNegative},
	{ID: "ei-9", Text: "You think before you speak in most situations.", Dimension: DimensionEI, Polarity: PolarityNegative},
	{ID: "ei-10", Text: "You feel drained after extended social interactions.", Dimension: DimensionEI, Polarity: PolarityNegative},
	{ID: "ei-11", Text: "You enjoy attending parties and social events.", Dimension: DimensionEI, Polarity: PolarityPositive},
	{ID: "ei-12", Text: "You find it easy to approach new people.", Dimension: DimensionEI, Polarity: PolarityPositive},
	{ID: "ei-13", Text: "You prefer to observe rather than participate in group activities.", Dimension: DimensionEI, Polarity: PolarityNegative},
	{ID: "ei-14", Text: "You feel more productive when working with others.", Dimension: DimensionEI, Polarity: PolarityPositive},
	{ID: "ei-15", Text: "You enjoy spending weekends at home rather than going out.", Dimension: DimensionEI, Polarity: PolarityNegative},

	// S/N
	{ID: "sn-1", Text: "You focus on practical, concrete information rather than abstract theories.", Dimension: DimensionSN, Polarity: PolarityPositive},
	{ID: "sn-2", Text: "You prefer dealing with facts rather than possibilities.", Dimension: DimensionSN, Polarity: PolarityPositive},
	{ID: "sn-3", Text: "You trust your direct experience more than theoretical knowledge.", Dimension: DimensionSN, Polarity: PolarityPositive},
	{ID: "sn-4", Text: "You pay attention to details rather than the big picture.", Dimension: DimensionSN, Polarity: PolarityPositive},
	{ID: "sn-5", Text: "You prefer step-by-step instructions over general guidelines.", Dimension: DimensionSN, Polarity: PolarityPositive},
	{ID: "sn-6", Text: "You are more interested in what is happening now than what might happen.", Dimension: DimensionSN, Polarity: PolarityPositive},
	{ID: "sn-7", Text: "You enjoy exploring abstract concepts and theories.", Dimension: DimensionSN, Polarity: PolarityNegative},
	{ID: "sn-8", Text: "You often think about future possibilities and scenarios.", Dimension: DimensionSN, Polarity: PolarityNegative},
	{ID: "sn-9", Text: "You trust your intuition when making decisions.", Dimension: DimensionSN, Polarity: PolarityNegative},
	{ID: "sn-10", Text: "You prefer to understand the underlying meaning rather than surface details.", Dimension: DimensionSN, Polarity: PolarityNegative},
	{ID: "sn-11", Text: "You enjoy learning through hands-on experience.", Dimension: DimensionSN, Polarity: PolarityPositive},
	{ID: "sn-12", Text: "You focus on realistic and achievable goals.", Dimension: DimensionSN, Polarity: PolarityPositive},
	{ID: "sn-13", Text: "You are drawn to new and innovative ideas.", Dimension: DimensionSN, Polarity: PolarityNegative},
	{ID: "sn-14", Text: "You prefer tried-and-true methods over experimental approaches.", Dimension: DimensionSN, Polarity: PolarityPositive},
	{ID: "sn-15", Text: "You often see patterns and connections that others miss.", Dimension: DimensionSN, Polarity: PolarityNegative},

	// T/F
	{ID: "tf-1", Text: "You make decisions based on logic rather than emotions.", Dimension: DimensionTF, Polarity: PolarityPositive},
	{ID: "tf-2", Text: "You value truth over tact when giving feedback.", Dimension: DimensionTF, Polarity: PolarityPositive},
	{ID: "tf-3", Text: "You prefer objective analysis over personal considerations.", Dimension: DimensionTF, Polarity: PolarityPositive},
	{ID: "tf-4", Text: "You find it easy to remain detached in emotional situations.", Dimension: DimensionTF, Polarity: PolarityPositive},
	{ID: "tf-5", Text: "You believe fairness means treating everyone the same way.", Dimension: DimensionTF, Polarity: PolarityPositive},
	{ID: "tf-6", Text: "You prioritize efficiency over harmony in group settings.", Dimension: DimensionTF, Polarity: PolarityPositive},
	{ID: "tf-7", Text: "You consider how decisions will affect others emotionally.", Dimension: DimensionTF, Polarity: PolarityNegative},
	{ID: "tf-8", Text: "You value harmony and avoid conflict when possible.", Dimension: DimensionTF, Polarity: PolarityNegative},
	{ID: "tf-9", Text: "You make decisions based on your personal values.", Dimension: DimensionTF, Polarity: PolarityNegative},
	{ID: "tf-10", Text: "You are sensitive to the emotional atmosphere in a room.", Dimension: DimensionTF, Polarity: PolarityNegative},
	{ID: "tf-11", Text: "You prefer to analyze problems objectively.", Dimension: DimensionTF, Polarity: PolarityPositive},
	{ID: "tf-12", Text: "You can easily identify logical inconsistencies.", Dimension: DimensionTF, Polarity: PolarityPositive},
	{ID: "tf-13", Text: "You prioritize being kind over being right.", Dimension: DimensionTF, Polarity: PolarityNegative},
	{ID: "tf-14", Text: "You find it difficult to criticize others even when necessary.", Dimension: DimensionTF, Polarity: PolarityNegative},
	{ID: "tf-15", Text: "You believe emotions should guide important life decisions.", Dimension: DimensionTF, Polarity: PolarityNegative},

	// J/P
	{ID: "jp-1", Text: "You prefer having a detailed plan before starting a project.", Dimension: DimensionJP, Polarity: PolarityPositive},
	{ID: "jp-2", Text: "You feel satisfied when tasks are completed and organized.", Dimension: DimensionJP, Polarity: PolarityPositive},
	{ID: "jp-3", Text: "You prefer to make decisions quickly rather than keep options open.", Dimension: DimensionJP, Polarity: PolarityPositive},
	{ID: "jp-4", Text: "You like having a structured daily routine.", Dimension: DimensionJP, Polarity: PolarityPositive},
	{ID: "jp-5", Text: "You feel uncomfortable with last-minute changes to plans.", Dimension: DimensionJP, Polarity: PolarityPositive},
	{ID: "jp-6", Text: "You prefer to finish one project before starting another.", Dimension: DimensionJP, Polarity: PolarityPositive},
	{ID: "jp-7", Text: "You enjoy spontaneous activities and surprises.", Dimension: DimensionJP, Polarity: PolarityNegative},
	{ID: "jp-8", Text: "You prefer to keep your options open rather than commit early.", Dimension: DimensionJP, Polarity: PolarityNegative},
	{ID: "jp-9", Text: "You adapt easily to changing circumstances.", Dimension: DimensionJP, Polarity: PolarityNegative},
	{ID: "jp-10", Text: "You often start new projects before finishing old ones.", Dimension: DimensionJP, Polarity: PolarityNegative},
	{ID: "jp-11", Text: "You prefer deadlines and clear timelines.", Dimension: DimensionJP, Polarity: PolarityPositive},
	{ID: "jp-12", Text: "You feel stressed when things are disorganized.", Dimension: DimensionJP, Polarity: PolarityPositive},
	{ID: "jp-13", Text: "You enjoy exploring different approaches without committing.", Dimension: DimensionJP, Polarity: PolarityNegative},
	{ID: "jp-14", Text: "You prefer flexible schedules over fixed ones.", Dimension: DimensionJP, Polarity: PolarityNegative},
	{ID: "jp-15", Text: "You feel energized by last-minute deadlines.", Dimension: DimensionJP, Polarity: PolarityNegative},
}

// AllQuestions returns a copy of the full catalog in definition order.
func AllQuestions() []Question {
	out := make([]Question, len(catalog))
	copy(out, catalog)
	return out
}

// QuestionsByDimension returns the catalog subset for one axis, in
// definition order.
func QuestionsByDimension(dim Dimension) []Question {
	out := make([]Question, 0, len(catalog)/len(Dimensions()))
	for _, q := range catalog {
		if q.Dimension == dim {
			out = append(out, q)
		}
	}
	return out
}

// QuestionByID looks up a catalog entry by id.
func QuestionByID(id string) (Question, bool) {
	for _, q := range catalog {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}
