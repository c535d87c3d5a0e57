// Package tagging decides which tags get persisted with an uploaded image,
// based on what the classifier saw.
package tagging

// MaxTags bounds the number of tags attached to a single image.
const MaxTags = 5

// Resolve computes the ordered tag list for an image from the classifier's
// ranked landmark and label results. When a landmark was recognized its
// description takes the first slot and labels fill the remaining four;
// otherwise the top five labels are used. Both inputs empty yields an empty
// result, which is still a valid (caption-only) outcome.
//
// Resolve is deterministic and never reorders its inputs: the classifier's
// own ranking is authoritative.
func Resolve(landmarks, labels []string) []string {
	tags := make([]string, 0, MaxTags)

	if len(landmarks) > 0 {
		tags = append(tags, landmarks[0])
	}

	for _, label := range labels {
		if len(tags) == MaxTags {
			break
		}
		tags = append(tags, label)
	}

	return tags
}
