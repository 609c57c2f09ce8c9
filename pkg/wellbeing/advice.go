package wellbeing

// Advisory text catalogue. Blocks carry no trailing newline; the generator
// joins them.

const (
	verdictTitle     = "Mental Health Assessment:"
	verdictListIntro = "Here are personalized suggestions to improve your well-being:"

	verdictGoodShape = `Your mental health appears to be in good shape! To maintain this:
• Continue your current healthy habits
• Stay connected with your support system
• Monitor any changes in your mood or sleep patterns
• Practice preventive self-care`

	verdictLowSleep = `Your sleep duration is below the recommended 7-9 hours. Consider:
• Setting a consistent bedtime routine
• Creating a dark, quiet sleep environment
• Avoiding screens 1-2 hours before bed
• Using relaxation techniques like deep breathing before sleep`

	verdictHighSleep = `While getting enough sleep is important, sleeping more than 9 hours regularly might indicate:
• Potential depression or underlying health issues
• Poor sleep quality
Consider:
• Maintaining a consistent wake-up time
• Getting exposure to natural light in the morning
• Consulting a healthcare provider if oversleeping persists`

	verdictAngry = `To manage anger effectively:
• Practice the 5-5-5 breathing technique (inhale 5s, hold 5s, exhale 5s)
• Step away from triggering situations when possible
• Express feelings through writing or talking to someone trusted
• Try progressive muscle relaxation`

	verdictAnxious = `To reduce anxiety:
• Practice grounding techniques (name 5 things you can see, 4 you can touch, etc.)
• Limit caffeine and sugar intake
• Try anxiety-reducing apps or guided meditations
• Break large tasks into smaller, manageable steps`

	verdictSad = `To improve your mood:
• Reach out to friends or family for support
• Engage in activities you usually enjoy, even if you don't feel like it
• Spend time in nature or get some sunlight
• Consider journaling about your feelings`

	verdictScreen = `Your screen time is higher than recommended. Try:
• Using the 20-20-20 rule (every 20 minutes, look 20 feet away for 20 seconds)
• Setting specific screen-free times during the day
• Using apps to monitor and limit screen time
• Finding offline alternatives for entertainment`

	verdictLowMood = `To improve your low mood:
• Set small, achievable goals for the day
• Practice self-compassion and avoid self-criticism
• Consider scheduling an appointment with a mental health professional
• Try mood-tracking to identify patterns and triggers`
)

const (
	nutritionTitle = "Nutrition Suggestions:"

	nutritionGeneral = `General Guidelines:
• Stay hydrated (aim for 8 glasses of water daily)
• Include a variety of colorful fruits and vegetables
• Choose whole grains over refined grains`

	nutritionSad = `For improving mood:
• Increase omega-3 rich foods (salmon, walnuts, flaxseeds)
• Add vitamin D sources (fatty fish, eggs, fortified foods)
• Include B-vitamin rich foods (leafy greens, legumes)
• Dark chocolate (70%+ cocoa) can help boost mood`

	nutritionAnxious = `For reducing anxiety:
• Include magnesium-rich foods (spinach, almonds, avocados)
• Add foods high in L-theanine (green tea, mushrooms)
• Choose complex carbs (oats, quinoa, sweet potatoes)
• Limit caffeine and processed sugars`

	nutritionAngry = `For mood stability:
• Include foods rich in vitamin B6 (bananas, chickpeas)
• Add tryptophan sources (turkey, eggs, cheese)
• Choose calming herbs (chamomile, lavender tea)
• Avoid stimulants and processed foods`

	nutritionLowSleep = `For better sleep:
• Include foods with natural melatonin (cherries, kiwis)
• Add magnesium-rich foods (pumpkin seeds, bananas)
• Consider calming teas (chamomile, valerian root)
• Avoid heavy meals 2-3 hours before bedtime`

	nutritionScreen = `For eye health:
• Increase foods rich in vitamin A (carrots, sweet potatoes)
• Add foods high in lutein (spinach, kale)
• Include omega-3 fatty acids for eye health
• Stay hydrated to prevent eye strain`
)

const (
	workoutTitle = "Exercise Recommendations:"

	workoutGeneral = `General Guidelines:
• Aim for 20 minutes of moderate activity per day
• Include both cardio and strength training
• Always warm up and cool down properly`

	workoutAnxious = `For anxiety relief:
• Try slow-paced yoga (suggestions: Child's pose, Cat-Cow, Forward Fold)
• Practice mindful walking for 15-20 minutes
• Do gentle stretching routines
• Consider tai chi or qigong`

	workoutSad = `For mood elevation:
• Start with 10-minute walk, gradually increase duration
• Try rhythmic exercises like swimming or cycling
• Join group exercise classes for social interaction
• Dance to your favorite music`

	workoutAngry = `For stress relief:
• High-intensity exercises like boxing or running
• Strength training with proper form
• Outdoor activities for fresh air
• End workouts with calming stretches`

	workoutEnergetic = `To channel energy:
• Try H.I.I.T. workouts (30 seconds work, 30 seconds rest)
• Consider sports like tennis or basketball
• Challenge yourself with new workout routines
• Mix cardio with strength training`

	workoutLowSleep = `For better sleep:
• Exercise earlier in the day, not close to bedtime
• Try evening stretching or gentle yoga
• Practice relaxation exercises
• Include walking after meals`

	workoutScreen = `To reduce screen time:
• Take movement breaks every hour
• Do desk exercises (neck rolls, shoulder shrugs)
• Try standing or walking meetings
• Use exercise as screen breaks`

	workoutRemember = `Remember:
• Listen to your body and adjust intensity as needed
• Stay hydrated before, during, and after exercise
• Consider working with a fitness professional for proper form
• Celebrate small improvements and be consistent`
)

// IndexGuide explains how the mental-health index is composed.
const IndexGuide = `Understanding Your Mental Health
=====================================
The Mental Health Index (0-10) is a comprehensive measure of your daily mental well-being. It combines multiple
factors to give you a holistic view of your mental health status.
Index Components:
----------------
• Mood Rating (40%)
  Your daily emotional state serves as the primary indicator of your mental well-being.
  The higher your mood rating, the better your mental health score.
• Sleep Quality (30%)
  Research shows that 7-9 hours of sleep is optimal for mental health.
  - Less than 7 hours: May impact cognitive function and emotional regulation
  - 7-9 hours: Ideal range for mental restoration
  - Over 9 hours: Might indicate other health concerns
• Screen Time (30%)
  Managing screen time is crucial for mental wellness.
  - Under 4 hours: Optimal for mental health
  - Over 4 hours: May contribute to stress and anxiety
Mood Type Adjustments:
--------------------
Your overall index is fine-tuned based on your mood type:
• Happy/Calm: +2 points
  Positive emotions contribute to better mental health
• Energetic: +1 point
  Active engagement with life is beneficial
• Neutral: No adjustment
  A baseline emotional state
• Sad/Anxious: -1 point
  These emotions may indicate need for self-care
• Angry: -2 points
  Intense negative emotions warrant attention
Why Tracking Matters:
------------------
Regular monitoring of your mental health helps you:
1. Identify patterns and triggers affecting your well-being
2. Recognize early warning signs of stress or burnout
3. Make informed decisions about lifestyle changes
4. Monitor the effectiveness of self-care practices
5. Track progress over time
Important Note:
-------------
This tool is designed for self-reflection and personal growth. It should not replace
professional medical advice. If you're experiencing persistent mental health challenges,
please reach out to a qualified mental health professional.
Remember: Your mental health journey is unique, and it's okay to seek help when needed.`
