package content

import "github.com/abhisek/pathwise/internal/catalog"

// StarterPack returns the built-in content: six modules spanning every
// category and three decision scenarios. Installations without content
// packs on disk run on this.
func StarterPack() Pack {
	return Pack{
		Name:    "starter",
		Version: 1,
		Modules: []catalog.Module{
			{
				ID:          "intro-ai",
				Title:       "Introduction to Artificial Intelligence",
				Description: "Foundational concepts of AI, machine learning, and their real-world applications",
				Category:    catalog.CategoryAIBasics,
				Difficulty:  catalog.Beginner,
				Blocks: []catalog.ContentBlock{
					{
						Kind:  catalog.BlockText,
						Title: "What is AI?",
						Body:  "Artificial Intelligence refers to computer systems that can perform tasks typically requiring human intelligence, such as recognizing speech, understanding images, and making decisions from data.",
					},
					{
						Kind:  catalog.BlockExercise,
						Title: "AI vs Machine Learning vs Deep Learning",
						Body:  "Sort the three terms from broadest to narrowest and note one example of each. Machine learning is one way to build AI; deep learning is one way to do machine learning.",
					},
					{
						Kind:  catalog.BlockVideo,
						Title: "AI in Daily Life",
						Body:  "Examples of AI applications you encounter every day, from spam filters to route planning.",
					},
				},
				Questions: []catalog.Question{
					{
						Prompt:      "Which of the following is NOT a type of machine learning?",
						Options:     []string{"Supervised Learning", "Unsupervised Learning", "Reinforcement Learning", "Quantum Learning"},
						Correct:     3,
						Explanation: "Quantum Learning is not a recognized type of machine learning paradigm.",
					},
					{
						Prompt:      "Which everyday product most likely uses machine learning?",
						Options:     []string{"A printed calendar", "An email spam filter", "A mechanical watch", "A paper map"},
						Correct:     1,
						Explanation: "Spam filters learn from examples of unwanted mail rather than following fixed rules.",
					},
				},
				EstimatedMins: 20,
			},
			{
				ID:          "ai-everyday",
				Title:       "AI in Everyday Life",
				Description: "Where AI already shapes what you see, hear, and buy",
				Category:    catalog.CategoryApplications,
				Difficulty:  catalog.Beginner,
				Blocks: []catalog.ContentBlock{
					{
						Kind:  catalog.BlockText,
						Title: "Recommendation Systems",
						Body:  "Streaming services, shops, and social feeds rank what you see by predicting what you will click. The prediction comes from patterns in what you and people like you did before.",
					},
					{
						Kind:  catalog.BlockVideo,
						Title: "Voice Assistants Up Close",
						Body:  "How a spoken question becomes text, the text becomes an intent, and the intent becomes an answer.",
					},
					{
						Kind:  catalog.BlockExercise,
						Title: "Spot the AI",
						Body:  "List five apps you used today and mark which ones ranked, filtered, or generated content for you.",
					},
				},
				Questions: []catalog.Question{
					{
						Prompt:      "A streaming service suggests shows based on your viewing history. What is this an example of?",
						Options:     []string{"A recommendation system", "A spreadsheet", "A search index", "A firewall"},
						Correct:     0,
						Explanation: "Recommendation systems predict preferences from past behavior.",
					},
					{
						Prompt:      "Why do two people see different results for the same social feed?",
						Options:     []string{"The app is broken", "Feeds are ranked per person from their own behavior", "One phone is faster", "Feeds are ordered purely by time"},
						Correct:     1,
						Explanation: "Ranking models personalize the order of content for each account.",
					},
				},
				EstimatedMins: 15,
			},
			{
				ID:            "ml-inside",
				Title:         "How Machine Learning Works",
				Description:   "Training, inference, and why data quality decides everything",
				Category:      catalog.CategoryAIBasics,
				Difficulty:    catalog.Intermediate,
				Prerequisites: []string{"intro-ai"},
				Blocks: []catalog.ContentBlock{
					{
						Kind:  catalog.BlockText,
						Title: "Training and Inference",
						Body:  "Training adjusts a model's parameters against labeled examples until its predictions stop improving. Inference runs the frozen model on new inputs. Nothing is learned at inference time.",
					},
					{
						Kind:  catalog.BlockExercise,
						Title: "Label the Pipeline",
						Body:  "Given the stages collect, clean, train, evaluate, deploy: place 'the model sees customer data for the first time' and 'an engineer fixes mislabeled rows' on the right stages.",
					},
					{
						Kind:  catalog.BlockVideo,
						Title: "Gradient Descent Without the Math",
						Body:  "A model improving is a ball rolling downhill on an error surface, one small step per example batch.",
					},
				},
				Questions: []catalog.Question{
					{
						Prompt:      "What happens during model training?",
						Options:     []string{"The model memorizes every input verbatim", "Parameters are adjusted to reduce prediction error on examples", "The model searches the internet", "The dataset is deleted"},
						Correct:     1,
						Explanation: "Training is iterative parameter adjustment against example data.",
					},
					{
						Prompt:      "A trained model gives a wrong answer on new data. Which explanation is most likely?",
						Options:     []string{"The model is lying", "The new data differs from what it was trained on", "Computers cannot be wrong", "The answer was right but unpopular"},
						Correct:     1,
						Explanation: "Models generalize from training data; inputs unlike that data produce unreliable outputs.",
					},
				},
				EstimatedMins: 25,
			},
			{
				ID:            "ethics-bias",
				Title:         "AI Ethics and Bias",
				Description:   "Understanding ethical implications, bias detection, and responsible AI use",
				Category:      catalog.CategoryEthicsBias,
				Difficulty:    catalog.Intermediate,
				Prerequisites: []string{"intro-ai"},
				Blocks: []catalog.ContentBlock{
					{
						Kind:  catalog.BlockCaseStudy,
						Title: "Algorithmic Bias in Hiring",
						Body:  "Real-world examples of how AI systems can perpetuate discrimination: a screening model trained on a decade of past hires learned to prefer the demographics of those hires.",
					},
					{
						Kind:  catalog.BlockExercise,
						Title: "Bias Detection Exercise",
						Body:  "For a loan-approval model, list three groups you would compare approval rates across, and what difference between groups would make you stop the rollout.",
					},
				},
				Questions: []catalog.Question{
					{
						Prompt:      "What is the most common source of bias in a machine learning system?",
						Options:     []string{"The programming language used", "Patterns in the training data", "The speed of the computer", "The color scheme of the interface"},
						Correct:     1,
						Explanation: "Models learn whatever patterns the training data contains, including unfair ones.",
					},
					{
						Prompt:      "An AI screening tool rejects most applicants from one neighborhood. What should happen first?",
						Options:     []string{"Ship it, the model knows best", "Audit the training data and outcomes for that group", "Hide the rejection statistics", "Lower the passing score for everyone"},
						Correct:     1,
						Explanation: "Disparate outcomes call for an audit before the system makes more decisions.",
					},
				},
				EstimatedMins: 25,
			},
			{
				ID:            "prompt-craft",
				Title:         "Prompt Engineering Basics",
				Description:   "Getting useful answers out of AI assistants, and checking them",
				Category:      catalog.CategoryPracticalSkills,
				Difficulty:    catalog.Intermediate,
				Prerequisites: []string{"intro-ai"},
				Blocks: []catalog.ContentBlock{
					{
						Kind:  catalog.BlockText,
						Title: "Clear Instructions Beat Clever Tricks",
						Body:  "State the task, the audience, the format, and the constraints. 'Summarize this article in three bullet points for a ninth grader' outperforms 'make this good'.",
					},
					{
						Kind:  catalog.BlockExercise,
						Title: "Rewrite the Prompt",
						Body:  "Take 'tell me about space' and rewrite it three times: once with a format, once with an audience, once with a length limit. Compare the answers.",
					},
				},
				Questions: []catalog.Question{
					{
						Prompt:      "Which prompt is most likely to get a useful answer?",
						Options:     []string{"help", "Write about history", "List three causes of the 1929 stock market crash, one sentence each", "Do my homework"},
						Correct:     2,
						Explanation: "Specific task, scope, and format give the model something checkable to produce.",
					},
					{
						Prompt:      "An assistant gives you a surprising fact. What should you do before repeating it?",
						Options:     []string{"Repeat it, assistants are always right", "Verify it against an independent source", "Ask the same assistant if it is sure", "Assume it is wrong and ignore it"},
						Correct:     1,
						Explanation: "Generated text can be confidently wrong; independent verification is the fix.",
					},
				},
				EstimatedMins: 20,
			},
			{
				ID:            "eval-claims",
				Title:         "Evaluating AI Claims",
				Description:   "Reading accuracy numbers and vendor promises critically",
				Category:      catalog.CategoryCriticalThinking,
				Difficulty:    catalog.Advanced,
				Prerequisites: []string{"ethics-bias"},
				Blocks: []catalog.ContentBlock{
					{
						Kind:  catalog.BlockText,
						Title: "Marketing vs Measurement",
						Body:  "An accuracy number is meaningless without the dataset, the base rate, and the cost of each kind of error. Ask what was measured, on what, and what happens when the model is wrong.",
					},
					{
						Kind:  catalog.BlockCaseStudy,
						Title: "The 99% Accuracy Trap",
						Body:  "A fraud detector scores 99% accuracy on data where 1% of transactions are fraud. A model that never flags anything scores the same. Precision and recall on the rare class tell the real story.",
					},
				},
				Questions: []catalog.Question{
					{
						Prompt:      "A vendor claims 99% accuracy detecting fraud that occurs in 1% of transactions. Why is this misleading?",
						Options:     []string{"99% is impossible", "A model that never flags fraud also scores 99%", "Fraud cannot be detected", "Accuracy only applies to images"},
						Correct:     1,
						Explanation: "With a 1% base rate, always predicting 'not fraud' is 99% accurate and useless.",
					},
					{
						Prompt:      "What is the strongest evidence that an AI system fits your use case?",
						Options:     []string{"A polished demo video", "Its results on your own data", "The size of the vendor", "The number of press releases"},
						Correct:     1,
						Explanation: "Performance on your data and your error costs is the only measurement that transfers.",
					},
				},
				EstimatedMins: 30,
			},
		},
		Scenarios: []catalog.Scenario{
			{
				ID:        "hiring-system",
				Title:     "AI-Powered Hiring System",
				Context:   "Your company wants to automate the initial screening of resumes using AI to save time and reduce human bias.",
				Challenge: "How do you ensure the AI system doesn't discriminate against qualified candidates?",
				Options: []catalog.ScenarioOption{
					{
						Text:        "Use historical hiring data to train the model",
						Consequence: "Risk of perpetuating past biases",
						EthicsScore: 2,
					},
					{
						Text:        "Implement bias detection and regular auditing",
						Consequence: "Better fairness but requires ongoing monitoring",
						EthicsScore: 8,
					},
					{
						Text:        "Focus only on technical skills and ignore demographics",
						Consequence: "May miss important soft skills and context",
						EthicsScore: 6,
					},
				},
				Considerations: []string{
					"Fairness and non-discrimination",
					"Transparency in decision-making",
					"Accountability for AI decisions",
				},
				Objectives: []string{
					"Identify potential sources of bias in AI systems",
					"Understand the importance of diverse training data",
					"Learn strategies for ongoing bias monitoring",
				},
			},
			{
				ID:        "viral-video",
				Title:     "The Viral Video",
				Context:   "A convincing video of a public figure saying something inflammatory is spreading fast. Several classmates have already shared it.",
				Challenge: "You edit the school newspaper. What do you do with the story?",
				Options: []catalog.ScenarioOption{
					{
						Text:        "Publish immediately before another outlet does",
						Consequence: "If the video is synthetic you amplified a fabrication with your name on it",
						EthicsScore: 1,
					},
					{
						Text:        "Verify with independent sources before any coverage",
						Consequence: "Slower, but whatever you publish holds up",
						EthicsScore: 9,
					},
					{
						Text:        "Share it with a caption saying it might be fake",
						Consequence: "The caption travels less far than the video does",
						EthicsScore: 4,
					},
				},
				Considerations: []string{
					"Harm from amplifying fabricated media",
					"Duty to verify before publishing",
				},
				Objectives: []string{
					"Recognize that synthetic media can be convincing",
					"Build a verification habit before sharing",
				},
			},
			{
				ID:        "auto-grader",
				Title:     "The Automated Grader",
				Context:   "A teacher is offered an AI tool that grades essays in seconds and is under time pressure before report cards.",
				Challenge: "How should the tool be used, if at all?",
				Options: []catalog.ScenarioOption{
					{
						Text:        "Let it assign final grades unsupervised",
						Consequence: "Students are graded by a system nobody checked, with no appeal path",
						EthicsScore: 3,
					},
					{
						Text:        "Use it for a first pass and review every grade",
						Consequence: "Saves time while a person stays accountable for the outcome",
						EthicsScore: 8,
					},
					{
						Text:        "Refuse all tooling and grade by hand",
						Consequence: "Accountable but slow; the backlog grows",
						EthicsScore: 5,
					},
				},
				Considerations: []string{
					"Accountability for decisions that affect people",
					"Human review of automated judgments",
				},
				Objectives: []string{
					"Place automation where a person stays in the loop",
					"Weigh time saved against accountability lost",
				},
			},
		},
	}
}
