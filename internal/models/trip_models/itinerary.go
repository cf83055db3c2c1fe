package trip_models

type Activity struct {
	Time        string `json:"time" bson:"time" firestore:"time"`
	Title       string `json:"title" bson:"title" firestore:"title"`
	Description string `json:"description" bson:"description" firestore:"description"`
	MapLink     string `json:"mapLink,omitempty" bson:"mapLink,omitempty" firestore:"mapLink,omitempty"`
}

type Day struct {
	Day        int        `json:"day" bson:"day" firestore:"day"`
	Title      string     `json:"title" bson:"title" firestore:"title"`
	Activities []Activity `json:"activities" bson:"activities" firestore:"activities"`
}

// TripItinerary is the day-by-day plan produced by the generation step.
type TripItinerary struct {
	Summary string   `json:"summary" bson:"summary" firestore:"summary" binding:"required"`
	Days    []Day    `json:"days" bson:"days" firestore:"days"`
	Tips    []string `json:"tips" bson:"tips" firestore:"tips"`
}

func (it TripItinerary) clone() TripItinerary {
	out := TripItinerary{Summary: it.Summary}
	if it.Days != nil {
		out.Days = make([]Day, len(it.Days))
		for i, d := range it.Days {
			out.Days[i] = Day{Day: d.Day, Title: d.Title}
			if d.Activities != nil {
				out.Days[i].Activities = append([]Activity(nil), d.Activities...)
			}
		}
	}
	if it.Tips != nil {
		out.Tips = append([]string(nil), it.Tips...)
	}
	return out
}
