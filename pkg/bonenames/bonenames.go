// Package bonenames maps the bone names used by XNALara, Mixamo, DAZ Genesis and
// generic biped rigs onto canonical humanoid slots, and renames skeletons to
// the Unity Mecanim convention.
package bonenames

import (
	"fmt"
	"strings"

	"github.com/Faultbox/xps-import/pkg/xps"
)

// BoneType is a canonical humanoid skeleton slot.
type BoneType int

const (
	Ground BoneType = iota + 1
	Hips
	SpineLower
	SpineMiddle
	SpineUpper
	Neck
	Head
	CollarLeft
	ShoulderLeft
	ElbowLeft
	HandLeft
	ThumbLeft0
	ThumbLeft1
	ThumbLeft2
	IndexLeft0
	IndexLeft1
	IndexLeft2
	MiddleLeft0
	MiddleLeft1
	MiddleLeft2
	RingLeft0
	RingLeft1
	RingLeft2
	PinkyLeft0
	PinkyLeft1
	PinkyLeft2
	CollarRight
	ShoulderRight
	ElbowRight
	HandRight
	ThumbRight0
	ThumbRight1
	ThumbRight2
	IndexRight0
	IndexRight1
	IndexRight2
	MiddleRight0
	MiddleRight1
	MiddleRight2
	RingRight0
	RingRight1
	RingRight2
	PinkyRight0
	PinkyRight1
	PinkyRight2
	HipLeft
	KneeLeft
	FootLeft
	ToeLeft
	HipRight
	KneeRight
	FootRight
	ToeRight
	Jaw
	EyelidLowerLeft
	EyelidUpperLeft
	EyeballLeft
	MouthCornerLeft
	EyebrowLeft0
	EyebrowLeft1
	EyebrowLeft2
	EyelidLowerRight
	EyelidUpperRight
	EyeballRight
	MouthCornerRight
	EyebrowRight0
	EyebrowRight1
	EyebrowRight2
	Pelvis
)

var typeNames = map[BoneType]string{
	Ground:           "Ground",
	Hips:             "Hips",
	SpineLower:       "SpineLower",
	SpineMiddle:      "SpineMiddle",
	SpineUpper:       "SpineUpper",
	Neck:             "Neck",
	Head:             "Head",
	CollarLeft:       "CollarLeft",
	ShoulderLeft:     "ShoulderLeft",
	ElbowLeft:        "ElbowLeft",
	HandLeft:         "HandLeft",
	ThumbLeft0:       "ThumbLeft0",
	ThumbLeft1:       "ThumbLeft1",
	ThumbLeft2:       "ThumbLeft2",
	IndexLeft0:       "IndexLeft0",
	IndexLeft1:       "IndexLeft1",
	IndexLeft2:       "IndexLeft2",
	MiddleLeft0:      "MiddleLeft0",
	MiddleLeft1:      "MiddleLeft1",
	MiddleLeft2:      "MiddleLeft2",
	RingLeft0:        "RingLeft0",
	RingLeft1:        "RingLeft1",
	RingLeft2:        "RingLeft2",
	PinkyLeft0:       "PinkyLeft0",
	PinkyLeft1:       "PinkyLeft1",
	PinkyLeft2:       "PinkyLeft2",
	CollarRight:      "CollarRight",
	ShoulderRight:    "ShoulderRight",
	ElbowRight:       "ElbowRight",
	HandRight:        "HandRight",
	ThumbRight0:      "ThumbRight0",
	ThumbRight1:      "ThumbRight1",
	ThumbRight2:      "ThumbRight2",
	IndexRight0:      "IndexRight0",
	IndexRight1:      "IndexRight1",
	IndexRight2:      "IndexRight2",
	MiddleRight0:     "MiddleRight0",
	MiddleRight1:     "MiddleRight1",
	MiddleRight2:     "MiddleRight2",
	RingRight0:       "RingRight0",
	RingRight1:       "RingRight1",
	RingRight2:       "RingRight2",
	PinkyRight0:      "PinkyRight0",
	PinkyRight1:      "PinkyRight1",
	PinkyRight2:      "PinkyRight2",
	HipLeft:          "HipLeft",
	KneeLeft:         "KneeLeft",
	FootLeft:         "FootLeft",
	ToeLeft:          "ToeLeft",
	HipRight:         "HipRight",
	KneeRight:        "KneeRight",
	FootRight:        "FootRight",
	ToeRight:         "ToeRight",
	Jaw:              "Jaw",
	EyelidLowerLeft:  "EyelidLowerLeft",
	EyelidUpperLeft:  "EyelidUpperLeft",
	EyeballLeft:      "EyeballLeft",
	MouthCornerLeft:  "MouthCornerLeft",
	EyebrowLeft0:     "EyebrowLeft0",
	EyebrowLeft1:     "EyebrowLeft1",
	EyebrowLeft2:     "EyebrowLeft2",
	EyelidLowerRight: "EyelidLowerRight",
	EyelidUpperRight: "EyelidUpperRight",
	EyeballRight:     "EyeballRight",
	MouthCornerRight: "MouthCornerRight",
	EyebrowRight0:    "EyebrowRight0",
	EyebrowRight1:    "EyebrowRight1",
	EyebrowRight2:    "EyebrowRight2",
	Pelvis:           "Pelvis",
}

// String returns the slot name.
func (t BoneType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("BoneType(%d)", int(t))
}

// Dictionary maps known source bone names to slots. Lookups are exact.
var Dictionary = map[string]BoneType{
	// XNALara
	"root ground":             Ground,
	"root hips":               Hips,
	"pelvis":                  Pelvis,
	"leg left thigh":          HipLeft,
	"leg left knee":           KneeLeft,
	"leg left ankle":          FootLeft,
	"leg left toes":           ToeLeft,
	"leg right thigh":         HipRight,
	"leg right knee":          KneeRight,
	"leg right ankle":         FootRight,
	"leg right toes":          ToeRight,
	"spine lower":             SpineLower,
	"spine middle":            SpineMiddle,
	"spine upper":             SpineUpper,
	"head neck lower":         Neck,
	"head neck upper":         Head,
	"head jaw":                Jaw,
	"head eyeball left":       EyeballLeft,
	"head eyeball right":      EyeballRight,
	"head eyelid upper right": EyelidUpperRight,
	"head eyelid lower right": EyelidLowerRight,
	"head eyelid upper left":  EyelidUpperLeft,
	"head eyelid lower left":  EyelidLowerLeft,
	"head eyelid right upper": EyelidUpperRight,
	"head eyelid right lower": EyelidLowerRight,
	"head eyelid left upper":  EyelidUpperLeft,
	"head eyelid left lower":  EyelidLowerLeft,
	"head eyebrow right a":    EyebrowRight0,
	"head eyebrow right b":    EyebrowRight1,
	"head eyebrow right c":    EyebrowRight2,
	"head eyebrow left a":     EyebrowLeft0,
	"head eyebrow left b":     EyebrowLeft1,
	"head eyebrow left c":     EyebrowLeft2,
	"head eyebrow right 1":    EyebrowRight0,
	"head eyebrow right 2":    EyebrowRight1,
	"head eyebrow right 3":    EyebrowRight2,
	"head eyebrow left 1":     EyebrowLeft0,
	"head eyebrow left 2":     EyebrowLeft1,
	"head eyebrow left 3":     EyebrowLeft2,
	"head mouth corner right": MouthCornerRight,
	"head mouth corner left":  MouthCornerLeft,
	"arm left shoulder 1":     CollarLeft,
	"arm left shoulder 2":     ShoulderLeft,
	"arm left shoulder a":     CollarLeft,
	"arm left shoulder b":     ShoulderLeft,
	"arm left elbow":          ElbowLeft,
	"arm left wrist":          HandLeft,
	"arm left wirst":          HandLeft,
	"arm left finger 1a":      ThumbLeft0,
	"arm left finger 1b":      ThumbLeft1,
	"arm left finger 1c":      ThumbLeft2,
	"arm left finger 2a":      IndexLeft0,
	"arm left finger 2b":      IndexLeft1,
	"arm left finger 2c":      IndexLeft2,
	"arm left finger 3a":      MiddleLeft0,
	"arm left finger 3b":      MiddleLeft1,
	"arm left finger 3c":      MiddleLeft2,
	"arm left finger 4a":      RingLeft0,
	"arm left finger 4b":      RingLeft1,
	"arm left finger 4c":      RingLeft2,
	"arm left finger 5a":      PinkyLeft0,
	"arm left finger 5b":      PinkyLeft1,
	"arm left finger 5c":      PinkyLeft2,
	"arm right shoulder 1":    CollarRight,
	"arm right shoulder 2":    ShoulderRight,
	"arm right shoulder a":    CollarRight,
	"arm right shoulder b":    ShoulderRight,
	"arm right elbow":         ElbowRight,
	"arm right wrist":         HandRight,
	"arm right wirst":         HandRight,
	"arm right finger 1a":     ThumbRight0,
	"arm right finger 1b":     ThumbRight1,
	"arm right finger 1c":     ThumbRight2,
	"arm right finger 2a":     IndexRight0,
	"arm right finger 2b":     IndexRight1,
	"arm right finger 2c":     IndexRight2,
	"arm right finger 3a":     MiddleRight0,
	"arm right finger 3b":     MiddleRight1,
	"arm right finger 3c":     MiddleRight2,
	"arm right finger 4a":     RingRight0,
	"arm right finger 4b":     RingRight1,
	"arm right finger 4c":     RingRight2,
	"arm right finger 5a":     PinkyRight0,
	"arm right finger 5b":     PinkyRight1,
	"arm right finger 5c":     PinkyRight2,

	// Mixamo
	"mixamorig_Hips":             Hips,
	"mixamorig_Spine":            SpineLower,
	"mixamorig_Spine1":           SpineMiddle,
	"mixamorig_Spine2":           SpineUpper,
	"mixamorig_Neck":             Neck,
	"mixamorig_Head":             Head,
	"mixamorig_LeftShoulder":     CollarLeft,
	"mixamorig_LeftArm":          ShoulderLeft,
	"mixamorig_LeftForeArm":      ElbowLeft,
	"mixamorig_LeftHand":         HandLeft,
	"mixamorig_LeftHandThumb1":   ThumbLeft0,
	"mixamorig_LeftHandThumb2":   ThumbLeft1,
	"mixamorig_LeftHandThumb3":   ThumbLeft2,
	"mixamorig_LeftHandIndex1":   IndexLeft0,
	"mixamorig_LeftHandIndex2":   IndexLeft1,
	"mixamorig_LeftHandIndex3":   IndexLeft2,
	"mixamorig_LeftHandMiddle1":  MiddleLeft0,
	"mixamorig_LeftHandMiddle2":  MiddleLeft1,
	"mixamorig_LeftHandMiddle3":  MiddleLeft2,
	"mixamorig_LeftHandRing1":    RingLeft0,
	"mixamorig_LeftHandRing2":    RingLeft1,
	"mixamorig_LeftHandRing3":    RingLeft2,
	"mixamorig_LeftHandPinky1":   PinkyLeft0,
	"mixamorig_LeftHandPinky2":   PinkyLeft1,
	"mixamorig_LeftHandPinky3":   PinkyLeft2,
	"mixamorig_RightShoulder":    CollarRight,
	"mixamorig_RightArm":         ShoulderRight,
	"mixamorig_RightForeArm":     ElbowRight,
	"mixamorig_RightHand":        HandRight,
	"mixamorig_RightHandThumb1":  ThumbRight0,
	"mixamorig_RightHandThumb2":  ThumbRight1,
	"mixamorig_RightHandThumb3":  ThumbRight2,
	"mixamorig_RightHandIndex1":  IndexRight0,
	"mixamorig_RightHandIndex2":  IndexRight1,
	"mixamorig_RightHandIndex3":  IndexRight2,
	"mixamorig_RightHandMiddle1": MiddleRight0,
	"mixamorig_RightHandMiddle2": MiddleRight1,
	"mixamorig_RightHandMiddle3": MiddleRight2,
	"mixamorig_RightHandRing1":   RingRight0,
	"mixamorig_RightHandRing2":   RingRight1,
	"mixamorig_RightHandRing3":   RingRight2,
	"mixamorig_RightHandPinky1":  PinkyRight0,
	"mixamorig_RightHandPinky2":  PinkyRight1,
	"mixamorig_RightHandPinky3":  PinkyRight2,
	"mixamorig_LeftUpLeg":        HipLeft,
	"mixamorig_LeftLeg":          KneeLeft,
	"mixamorig_LeftFoot":         FootLeft,
	"mixamorig_LeftToeBase":      ToeLeft,
	"mixamorig_RightUpLeg":       HipRight,
	"mixamorig_RightLeg":         KneeRight,
	"mixamorig_RightFoot":        FootRight,
	"mixamorig_RightToeBase":     ToeRight,

	// DAZ Genesis
	"Genesis":      Ground,
	"hip":          Hips,
	"lThigh":       HipLeft,
	"lShin":        KneeLeft,
	"lFoot":        FootLeft,
	"lToe":         ToeLeft,
	"rThigh":       HipRight,
	"rShin":        KneeRight,
	"rFoot":        FootRight,
	"rToe":         ToeRight,
	"abdomen":      SpineLower,
	"abdomen2":     SpineMiddle,
	"chest":        SpineUpper,
	"neck":         Neck,
	"head":         Head,
	"rEye":         EyeballRight,
	"lEye":         EyeballLeft,
	"upperJaw":     Jaw,
	"rCollar":      CollarRight,
	"rShldr":       ShoulderRight,
	"rForeArm":     ElbowRight,
	"rHand":        HandRight,
	"rThumb1":      ThumbRight0,
	"rThumb2":      ThumbRight1,
	"rThumb3":      ThumbRight2,
	"rIndex1":      IndexRight0,
	"rIndex2":      IndexRight1,
	"rIndex3":      IndexRight2,
	"rMid1":        MiddleRight0,
	"rMid2":        MiddleRight1,
	"rMid3":        MiddleRight2,
	"rRing1":       RingRight0,
	"rRing2":       RingRight1,
	"rRing3":       RingRight2,
	"rPinky1":      PinkyRight0,
	"rPinky2":      PinkyRight1,
	"rPinky3":      PinkyRight2,
	"lCollar":      CollarLeft,
	"lShldr":       ShoulderLeft,
	"lForeArm":     ElbowLeft,
	"lHand":        HandLeft,
	"lThumb1":      ThumbLeft0,
	"lThumb2":      ThumbLeft1,
	"lThumb3":      ThumbLeft2,
	"lIndex1":      IndexLeft0,
	"lIndex2":      IndexLeft1,
	"lIndex3":      IndexLeft2,
	"lMid1":        MiddleLeft0,
	"lMid2":        MiddleLeft1,
	"lMid3":        MiddleLeft2,
	"lRing1":       RingLeft0,
	"lRing2":       RingLeft1,
	"lRing3":       RingLeft2,
	"lPinky1":      PinkyLeft0,
	"lPinky2":      PinkyLeft1,
	"lPinky3":      PinkyLeft2,
	"rShldrBend":   ShoulderRight,
	"rForearmBend": ElbowRight,
	"rThighBend":   HipRight,
	"lShldrBend":   ShoulderLeft,
	"lForearmBend": ElbowLeft,
	"lThighBend":   HipLeft,
	"abdomenLower": SpineLower,
	"abdomenUpper": SpineMiddle,
	"chestLower":   SpineUpper,
	"neckLower":    Neck,

	// Generic biped
	"Hips":          Hips,
	"Chest":         SpineLower,
	"Chest2":        SpineMiddle,
	"Chest3":        SpineUpper,
	"Neck":          Neck,
	"Head":          Head,
	"LeftCollar":    CollarLeft,
	"LeftShoulder":  ShoulderLeft,
	"LeftElbow":     ElbowLeft,
	"LeftHand":      HandLeft,
	"LeftFinger0":   ThumbLeft0,
	"LeftFinger01":  ThumbLeft1,
	"LeftFinger1":   IndexLeft0,
	"LeftFinger11":  IndexLeft1,
	"RightCollar":   CollarRight,
	"RightShoulder": ShoulderRight,
	"RightElbow":    ElbowRight,
	"RightHand":     HandRight,
	"RightFinger0":  ThumbRight0,
	"RightFinger01": ThumbRight1,
	"RightFinger1":  IndexRight0,
	"RightFinger11": IndexRight1,
	"LeftHip":       HipLeft,
	"LeftKnee":      KneeLeft,
	"LeftAnkle":     FootLeft,
	"LeftToe":       ToeLeft,
	"RightHip":      HipRight,
	"RightKnee":     KneeRight,
	"RightAnkle":    FootRight,
	"RightToe":      ToeRight,
}

// mecanimNames holds the Mecanim humanoid name for each slot that has one.
// Ground, pelvis, eyelid, eyebrow and mouth corner slots have none.
var mecanimNames = map[BoneType]string{
	Hips:          "Hips",
	HipLeft:       "LeftUpperLeg",
	KneeLeft:      "LeftLowerLeg",
	FootLeft:      "LeftFoot",
	ToeLeft:       "LeftToes",
	HipRight:      "RightUpperLeg",
	KneeRight:     "RightLowerLeg",
	FootRight:     "RightFoot",
	ToeRight:      "RightToes",
	SpineLower:    "Spine",
	SpineMiddle:   "Chest",
	SpineUpper:    "UpperChest",
	Neck:          "Neck",
	Head:          "Head",
	Jaw:           "Jaw",
	EyeballLeft:   "LeftEye",
	EyeballRight:  "RightEye",
	CollarLeft:    "LeftShoulder",
	ShoulderLeft:  "LeftUpperArm",
	ElbowLeft:     "LeftLowerArm",
	HandLeft:      "LeftHand",
	ThumbLeft0:    "Left Thumb Proximal",
	ThumbLeft1:    "Left Thumb Intermediate",
	ThumbLeft2:    "Left Thumb Distal",
	IndexLeft0:    "Left Index Proximal",
	IndexLeft1:    "Left Index Intermediate",
	IndexLeft2:    "Left Index Distal",
	MiddleLeft0:   "Left Middle Proximal",
	MiddleLeft1:   "Left Middle Intermediate",
	MiddleLeft2:   "Left Middle Distal",
	RingLeft0:     "Left Ring Proximal",
	RingLeft1:     "Left Ring Intermediate",
	RingLeft2:     "Left Ring Distal",
	PinkyLeft0:    "Left Little Proximal",
	PinkyLeft1:    "Left Little Intermediate",
	PinkyLeft2:    "Left Little Distal",
	CollarRight:   "RightShoulder",
	ShoulderRight: "RightUpperArm",
	ElbowRight:    "RightLowerArm",
	HandRight:     "RightHand",
	ThumbRight0:   "Right Thumb Proximal",
	ThumbRight1:   "Right Thumb Intermediate",
	ThumbRight2:   "Right Thumb Distal",
	IndexRight0:   "Right Index Proximal",
	IndexRight1:   "Right Index Intermediate",
	IndexRight2:   "Right Index Distal",
	MiddleRight0:  "Right Middle Proximal",
	MiddleRight1:  "Right Middle Intermediate",
	MiddleRight2:  "Right Middle Distal",
	RingRight0:    "Right Ring Proximal",
	RingRight1:    "Right Ring Intermediate",
	RingRight2:    "Right Ring Distal",
	PinkyRight0:   "Right Little Proximal",
	PinkyRight1:   "Right Little Intermediate",
	PinkyRight2:   "Right Little Distal",
}

// Lookup returns the slot for a source bone name.
func Lookup(name string) (BoneType, bool) {
	t, ok := Dictionary[name]
	return t, ok
}

// MecanimName returns the Mecanim humanoid name for a slot.
func MecanimName(t BoneType) (string, bool) {
	name, ok := mecanimNames[t]
	return name, ok
}

// Naming selects the bone naming convention applied after decoding.
type Naming int

const (
	// Default keeps bone names as stored in the file.
	Default Naming = iota
	// Mecanim renames recognized bones to Unity Mecanim humanoid names.
	Mecanim
)

// String returns the configuration name of the convention.
func (n Naming) String() string {
	switch n {
	case Default:
		return "default"
	case Mecanim:
		return "mecanim"
	default:
		return fmt.Sprintf("Naming(%d)", int(n))
	}
}

// ParseNaming parses a configuration value ("default" or "mecanim").
func ParseNaming(s string) (Naming, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default":
		return Default, nil
	case "mecanim":
		return Mecanim, nil
	default:
		return Default, fmt.Errorf("unknown bone naming %q", s)
	}
}

// Rename applies the naming convention to the model's bones in place and
// returns the number of bones renamed. Bones with no known slot, or whose
// slot has no name in the target convention, keep their names.
func Rename(model *xps.Model, naming Naming) int {
	if naming != Mecanim {
		return 0
	}
	renamed := 0
	for i := range model.Bones {
		t, ok := Lookup(model.Bones[i].Name)
		if !ok {
			continue
		}
		if name, ok := MecanimName(t); ok {
			model.Bones[i].Name = name
			renamed++
		}
	}
	return renamed
}
