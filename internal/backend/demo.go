package backend

import (
	"context"
	"time"
)

// DefaultDemoDelay mimics a processing round trip.
const DefaultDemoDelay = 3 * time.Second

type demoClient struct {
	delay time.Duration
}

// NewDemo returns a client that waits delay and then hands back fixed
// demonstration content for every video.
func NewDemo(delay time.Duration) Client {
	if delay < 0 {
		delay = 0
	}
	return &demoClient{delay: delay}
}

func (c *demoClient) Name() string {
	return "demo"
}

func (c *demoClient) Summarize(ctx context.Context, req Request) (Result, error) {
	if c.delay > 0 {
		timer := time.NewTimer(c.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	result := DemoResult()
	result.SubmissionID = req.SubmissionID
	return result, nil
}

// DemoResult is the placeholder content shown until a real backend exists.
func DemoResult() Result {
	return Result{
		Summary: demoSummary,
		Notes:   demoNotes,
		MindMap: demoMindMap,
		QnA:     demoQnA,
	}
}

const demoSummary = `# 📹 Video Summary

This is a demonstration of the video summary feature. In the actual implementation, this section would contain an AI-generated summary of the YouTube video content, highlighting the main points, key takeaways, and important information discussed in the video.

## Key Points:

- 🎯 Main topic and purpose of the video
- 📊 Important statistics or data mentioned
- 💡 Key insights and conclusions
- 🔗 Related topics and references

**Duration:** Video length and summary ratio would be displayed here.
`

const demoNotes = `# 📝 Structured Notes

## 🔍 Introduction

- Brief overview of the topic
- Context and background information

## 🎯 Main Content

- Primary points discussed in the video
- Supporting evidence and examples
- Step-by-step processes (if applicable)

## 💭 Conclusion

- Summary of key takeaways
- Final thoughts and recommendations
`

const demoMindMap = `# 🧠 Interactive Mind Map

Mind map visualization will be rendered here.

The mind map will show the hierarchical structure of video content, connecting related topics and concepts in an interactive visual format.

## Features:

- 🌳 Hierarchical topic organization
- 🎨 Interactive nodes and branches
- 🔍 Expandable/collapsible sections
- 🎯 Click-to-focus functionality
`

const demoQnA = `# ❓ Questions & Answers

**Q1:** What is the main topic of this video?

> **A:** This would contain an AI-generated answer based on the video content analysis.

**Q2:** What are the key takeaways mentioned?

> **A:** The system would identify and list the most important points discussed in the video.

**Q3:** How can this information be applied?

> **A:** Practical applications and implementation suggestions would be provided here.

💡 *AI will generate 5-10 relevant questions and answers based on the video transcript.*
`
